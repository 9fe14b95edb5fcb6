package domain

// Int returns a pointer to v. Convenience for optional numeric fields.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
