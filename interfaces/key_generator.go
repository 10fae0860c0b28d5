package interfaces

// KeyGenerator mints session keys. Keys are not promised to be unique; the
// session store rejects collisions.
//
//go:generate moq -stub -out mock/key_generator.go -pkg mock . KeyGenerator
type KeyGenerator interface {
	Generate() (string, error)
}
