package gesture

import "github.com/jask/drawerkit/core/drawer"

type dragHandler struct {
	id uint32
	fn func(drawer.GestureSample)
}

type tapHandler struct {
	id    uint32
	count int
	fn    func(drawer.Point)
}

type registry struct {
	drag   []dragHandler
	tap    []tapHandler
	nextID uint32
}

// handle unregisters one callback.
type handle struct {
	id  uint32
	reg *registry
	tap bool
}

func (h handle) Unsubscribe() {
	if h.reg == nil {
		return
	}
	if h.tap {
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
		return
	}
	h.reg.drag = removeDragHandler(h.reg.drag, h.id)
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
