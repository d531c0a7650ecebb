//go:build !linux

package framebuffer

func Open(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}

func OpenReadOnly(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}
