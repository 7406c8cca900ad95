package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalised 1D Gaussian kernel with standard
// deviation sigma.
//
// The kernel size is 2 * ceil(sigma * 3) + 1, covering three standard
// deviations. For sigma <= 0 it returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := KernelHalfSize(sigma)
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels on normalisation.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// KernelHalfSize returns the number of taps on each side of the centre
// for a Gaussian of the given sigma.
func KernelHalfSize(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache caches Gaussian kernels keyed by sigma*100.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(16)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// size reports the number of cached kernels.
func (c *kernelCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a shared Gaussian kernel for sigma.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
