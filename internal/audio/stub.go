//go:build !cgo

package audio

// Without cgo there is no audio device backend.
func newBackend(Config) (Player, error) {
	return Silent{}, ErrUnavailable
}
