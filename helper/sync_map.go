package helper

import "sync"

// SyncMap is a typed wrapper over sync.Map, exposing only the operations the
// module actually needs.
type SyncMap[Key comparable, Value any] struct {
	inner sync.Map
}

func (m *SyncMap[Key, Value]) Get(key Key) (value Value, exists bool) {
	rawValue, exists := m.inner.Load(key)
	if !exists {
		return value, exists
	}
	return rawValue.(Value), exists
}

func (m *SyncMap[Key, Value]) Put(key Key, value Value) (old Value, exists bool) {
	rawValue, exists := m.inner.Swap(key, value)
	if !exists {
		return old, exists
	}
	return rawValue.(Value), exists
}

// PutIfAbsent stores value unless the key is already present, returning
// whichever value ends up in the map.
func (m *SyncMap[Key, Value]) PutIfAbsent(key Key, value Value) (actual Value, exists bool) {
	actualValue, exists := m.inner.LoadOrStore(key, value)
	if !exists {
		return value, exists
	}
	return actualValue.(Value), exists
}

func (m *SyncMap[Key, Value]) Remove(key Key) (value Value, exists bool) {
	rawValue, exists := m.inner.LoadAndDelete(key)
	if !exists {
		return value, exists
	}
	return rawValue.(Value), exists
}
