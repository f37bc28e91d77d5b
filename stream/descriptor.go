package stream

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Duplicator duplicates an OS descriptor, returning the new descriptor
type Duplicator func(fd int) (int, error)

// DupCloexec duplicates fd with close-on-exec set
func DupCloexec(fd int) (int, error) {
	nfd, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return -1, err
	}
	return nfd, nil
}

// DescriptorCache owns one duplicate of a standard descriptor for the life of the process.
// The source is duplicated at most once, on first use; every Clone is a fresh duplicate
// of the cached one, so closing a clone never touches the source or the cache.
type DescriptorCache struct {
	source int
	name   string
	dup    Duplicator

	mu  sync.Mutex
	fd  int
	err error
	set bool
}

// NewDescriptorCache creates a cache for source; dup nil means DupCloexec
func NewDescriptorCache(source int, name string, dup Duplicator) *DescriptorCache {
	if dup == nil {
		dup = DupCloexec
	}
	return &DescriptorCache{source: source, name: name, dup: dup, fd: -1}
}

// raw returns the cached descriptor, duplicating the source on first call
// A failed duplication is remembered and returned again, it is not retried
func (c *DescriptorCache) raw() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		c.fd, c.err = c.dup(c.source)
		c.set = true
		if c.err != nil {
			c.err = fmt.Errorf("duplicate %s descriptor: %w", c.name, c.err)
		}
	}
	return c.fd, c.err
}

// Clone returns a new file over a duplicate of the cached descriptor
func (c *DescriptorCache) Clone() (*os.File, error) {
	fd, err := c.raw()
	if err != nil {
		return nil, err
	}

	nfd, err := c.dup(fd)
	if err != nil {
		return nil, fmt.Errorf("clone raw %s: %w", c.name, err)
	}
	return os.NewFile(uintptr(nfd), c.name), nil
}

// Process-wide caches, duplicated lazily on the first unbuffered open
var (
	rawStdout = NewDescriptorCache(Stdout.Fd(), "stdout", nil)
	rawStderr = NewDescriptorCache(Stderr.Fd(), "stderr", nil)
)

// Raw returns the process-wide descriptor cache of a standard stream
func Raw(t Target) *DescriptorCache {
	if t == Stderr {
		return rawStderr
	}
	return rawStdout
}
