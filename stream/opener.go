package stream

import (
	"fmt"
	"os"
)

// Opener builds writers for configurations
type Opener struct {
	files [2]*os.File
	raw   [2]*DescriptorCache
}

// NewOpener opens the process's standard streams, unbuffered writers clone the process-wide caches
func NewOpener() *Opener {
	return &Opener{
		files: [2]*os.File{os.Stdout, os.Stderr},
		raw:   [2]*DescriptorCache{Raw(Stdout), Raw(Stderr)},
	}
}

// NewOpenerWith uses the given files and caches per target, for redirected or test streams
func NewOpenerWith(stdout, stderr *os.File, rawStdout, rawStderr *DescriptorCache) *Opener {
	return &Opener{
		files: [2]*os.File{stdout, stderr},
		raw:   [2]*DescriptorCache{rawStdout, rawStderr},
	}
}

// Open returns a writer for cfg
// Descriptor duplication failure is returned as is, there is no fallback to a buffered mode
func (o *Opener) Open(cfg Config) (Writer, error) {
	switch cfg.Buffering {
	case Unbuffered:
		f, err := o.raw[cfg.Target].Clone()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg, err)
		}
		return NewUnbuffered(f, true), nil
	case LineBuffered:
		return NewLineWriter(o.files[cfg.Target]), nil
	case BlockBuffered:
		return NewBlockWriter(o.files[cfg.Target]), nil
	}
	return nil, fmt.Errorf("open %s: unknown buffering %d", cfg.Target, cfg.Buffering)
}
