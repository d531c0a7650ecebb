package framebuffer

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/colorspector/internal/ioctl"
	"github.com/BeatGlow/colorspector/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // FB_CAP_
	Reserved     [2]uint16 // Reserved for future compatibility
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x], for
// reading and drawing.
func Open(name string) (*FrameBuffer, error) {
	return open(name, false)
}

// OpenReadOnly opens a Linux FrameBuffer device for sampling only.
func OpenReadOnly(name string) (*FrameBuffer, error) {
	return open(name, true)
}

func open(name string, readOnly bool) (*FrameBuffer, error) {
	var (
		flag = os.O_RDWR
		prot = unix.PROT_READ | unix.PROT_WRITE
	)
	if readOnly {
		flag, prot = os.O_RDONLY, unix.PROT_READ
	}

	f, err := os.OpenFile(name, flag, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fd         = f.Fd()
		info       fixScreenInfo
		screenInfo varScreenInfo
		model      color.Model
	)
	if err = ioctl.Do(fd, fbioGetFScreenInfo, unsafe.Pointer(&info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Do(fd, fbioGetVScreenInfo, unsafe.Pointer(&screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if model, err = parseColorModel(&screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	mem, err := unix.Mmap(int(fd), 0, int(info.SmemLen), prot, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// The visible area starts at the panning offset.
	var (
		size   = int(screenInfo.BitsPerPixel / 8)
		offset = int(screenInfo.Yoffset)*int(info.LineLength) + int(screenInfo.Xoffset)*size
		buffer = pixel.Buffer{
			Rect:   image.Rect(0, 0, int(screenInfo.Xres), int(screenInfo.Yres)),
			Stride: int(info.LineLength),
		}
	)
	if offset+int(screenInfo.Yres)*buffer.Stride > len(mem) {
		_ = unix.Munmap(mem)
		_ = f.Close()
		return nil, errors.New("framebuffer: visible area exceeds mapped memory")
	}
	buffer.Pix = mem[offset:]

	im, err := newImage(buffer, model, binary.NativeEndian)
	if err != nil {
		_ = unix.Munmap(mem)
		_ = f.Close()
		return nil, err
	}

	return &FrameBuffer{
		Image:    im,
		name:     name,
		readOnly: readOnly,
		close: func() error {
			if err := unix.Munmap(mem); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}, nil
}
