package rage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyState tracks which keys are held. A Game feeds it from Ebitengine every
// update; tests and replays can drive it with Press and Release.
type KeyState struct {
	down map[ebiten.Key]bool
	buf  []ebiten.Key
}

// NewKeyState returns an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{down: make(map[ebiten.Key]bool)}
}

// Press marks key as held.
func (k *KeyState) Press(key ebiten.Key) {
	k.down[key] = true
}

// Release marks key as not held.
func (k *KeyState) Release(key ebiten.Key) {
	delete(k.down, key)
}

// KeyDown reports whether key is held.
func (k *KeyState) KeyDown(key ebiten.Key) bool {
	return k.down[key]
}

// KeyUp reports whether key is not held.
func (k *KeyState) KeyUp(key ebiten.Key) bool {
	return !k.down[key]
}

// AnyKeyDown reports whether at least one of keys is held.
func (k *KeyState) AnyKeyDown(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.down[key] {
			return true
		}
	}
	return false
}

// AnyKeyUp reports whether at least one of keys is not held.
func (k *KeyState) AnyKeyUp(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if !k.down[key] {
			return true
		}
	}
	return false
}

// AllKeysDown reports whether every one of keys is held.
func (k *KeyState) AllKeysDown(keys ...ebiten.Key) bool {
	return !k.AnyKeyUp(keys...)
}

// AllKeysUp reports whether none of keys is held.
func (k *KeyState) AllKeysUp(keys ...ebiten.Key) bool {
	return !k.AnyKeyDown(keys...)
}

// NumKeys returns how many keys are held.
func (k *KeyState) NumKeys() int {
	return len(k.down)
}

// poll applies this update's presses and releases from Ebitengine.
func (k *KeyState) poll() {
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.Press(key)
	}
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.Release(key)
	}
}
