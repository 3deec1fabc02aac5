//go:build !deadlock

package syncutils

import (
	"sync"
)

// Mutex is the mutex used to serialize access to shared state. It is replaced by a deadlock detecting mutex when the
// module is built with the "deadlock" tag.
type Mutex = sync.Mutex

// RWMutex is the reader/writer counterpart of Mutex.
type RWMutex = sync.RWMutex
