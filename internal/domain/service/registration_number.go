package service

// RegistrationNumberSource draws candidate seller registration numbers.
// Each call returns a uniform value from the 8-digit range; uniqueness is the
// seller registrar's responsibility, enforced with check-then-insert plus a
// bounded retry on store-level conflicts.
type RegistrationNumberSource interface {
	Next() int64
}
