// Package mmap maps dataset files read-only into memory.
//
// Vector files of large benchmark sets are parsed front to back; mapping them
// avoids an intermediate copy and lets the kernel read ahead.
//
//	m, err := mmap.Open("s1.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	section, _ := m.Section(0, 4096)
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile; Advise is a no-op there.
//
// A Mapping is safe for concurrent reads. Close is idempotent; slices
// obtained from Bytes or Section must not be used after Close returns.
package mmap
