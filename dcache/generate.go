package dcache

//go:generate mockgen -destination=mock_dcache.go -package=dcache . DCache
