// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build cgo && libkrun

package krun

/*
#cgo LDFLAGS: -lkrun
#include <stdlib.h>
#include <libkrun.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

var setLogLevelOnce sync.Once //nolint:gochecknoglobals

// CreateContext implements [Runtime].
func (l *Libkrun) CreateContext() (Context, error) {
	var err error

	setLogLevelOnce.Do(func() {
		err = codeError("set_log_level",
			int32(C.krun_set_log_level(C.uint32_t(l.LogLevel))))
	})

	if err != nil {
		return nil, err
	}

	ret := int32(C.krun_create_ctx())

	err = codeError("create_ctx", ret)
	if err != nil {
		return nil, err
	}

	return &libkrunContext{id: C.uint32_t(ret)}, nil
}

type libkrunContext struct {
	id C.uint32_t
}

func (c *libkrunContext) SetVMConfig(vcpus uint8, memoryMiB uint32) error {
	ret := C.krun_set_vm_config(c.id, C.uint8_t(vcpus), C.uint32_t(memoryMiB))
	return codeError("set_vm_config", int32(ret))
}

func (c *libkrunContext) SetRoot(path string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	ret := C.krun_set_root(c.id, cPath)

	return codeError("set_root", int32(ret))
}

func (c *libkrunContext) SetPortMap(ports []string) error {
	cPorts := newCStringArray(ports)
	defer cPorts.free()

	ret := C.krun_set_port_map(c.id, cPorts.ptr())

	return codeError("set_port_map", int32(ret))
}

func (c *libkrunContext) SetExec(path string, args, env []string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	cArgs := newCStringArray(args)
	defer cArgs.free()

	// Never pass a NULL envp. libkrun would forward the complete host
	// environment in that case.
	cEnv := newCStringArray(env)
	defer cEnv.free()

	ret := C.krun_set_exec(c.id, cPath, cArgs.ptr(), cEnv.ptr())

	return codeError("set_exec", int32(ret))
}

func (c *libkrunContext) StartEnter() error {
	ret := int32(C.krun_start_enter(c.id))

	err := codeError("start_enter", ret)
	if err != nil {
		return err
	}

	return ErrReturned
}

// cStringArray is a NULL terminated array of C strings allocated in C memory.
type cStringArray []*C.char

func newCStringArray(strs []string) cStringArray {
	size := C.size_t(unsafe.Sizeof((*C.char)(nil))) * C.size_t(len(strs)+1)
	mem := (**C.char)(C.malloc(size))
	arr := unsafe.Slice(mem, len(strs)+1)

	for idx, s := range strs {
		arr[idx] = C.CString(s)
	}

	arr[len(strs)] = nil

	return arr
}

func (a cStringArray) ptr() **C.char {
	return &a[0]
}

func (a cStringArray) free() {
	for _, s := range a {
		if s != nil {
			C.free(unsafe.Pointer(s))
		}
	}

	C.free(unsafe.Pointer(&a[0]))
}
