package bridge

import (
	"slices"
	"strconv"

	"github.com/dop251/goja"

	"github.com/wippyai/webgl-bridge/errors"
)

// Register stores obj in the global container under the decimal form of
// id, creating the container on first use. An existing entry is replaced.
func Register(vm *goja.Runtime, container string, id uint32, obj *goja.Object) error {
	m, err := contextMap(vm, container, true)
	if err != nil {
		return err
	}
	return m.Set(strconv.FormatUint(uint64(id), 10), obj)
}

// Lookup returns the context registered under id.
func (b *Bridge) Lookup(id uint32) (*goja.Object, bool) {
	m, err := contextMap(b.vm, b.options.ContextsGlobal, false)
	if err != nil || m == nil {
		return nil, false
	}
	obj, ok := m.Get(strconv.FormatUint(uint64(id), 10)).(*goja.Object)
	return obj, ok
}

// Contexts returns the registered context IDs in ascending order.
func (b *Bridge) Contexts() []uint32 {
	m, err := contextMap(b.vm, b.options.ContextsGlobal, false)
	if err != nil || m == nil {
		return nil
	}
	var ids []uint32
	for _, key := range m.Keys() {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint32(id))
	}
	slices.Sort(ids)
	return ids
}

func contextMap(vm *goja.Runtime, container string, create bool) (*goja.Object, error) {
	global := vm.GlobalObject()
	v := global.Get(container)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		if !create {
			return nil, nil
		}
		m := vm.NewObject()
		if err := global.Set(container, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	m, ok := v.(*goja.Object)
	if !ok {
		return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			Detail("global %s is not an object", container).
			Value(v.Export()).
			Build()
	}
	return m, nil
}
