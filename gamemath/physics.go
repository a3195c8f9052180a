// Package gamemath provides small scalar helpers used by movement code.
package gamemath

// Sign returns 1 for positive n and -1 otherwise, zero included.
func Sign(n float64) float64 {
	if n > 0 {
		return 1
	}
	return -1
}

// Approach moves n toward target by at most amount without passing it.
func Approach(n, target, amount float64) float64 {
	if n > target {
		return max(n-amount, target)
	}
	return min(n+amount, target)
}

// ClampSpeed clamps a value to [-limit, limit].
func ClampSpeed(speed, limit float64) float64 {
	if speed > limit {
		return limit
	}
	if speed < -limit {
		return -limit
	}
	return speed
}
