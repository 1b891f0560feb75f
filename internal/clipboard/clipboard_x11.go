//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Without cgo the X11 CLIPBOARD selection is owned directly over xgb. The
// image is served to requestors for as long as the process runs.

var (
	initOnce sync.Once
	initErr  error
	owner    *x11Owner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		o, err := newX11Owner()
		if err != nil {
			initErr = err
			return
		}
		owner = o
	})
	return initErr
}

func writePNG(data []byte) error {
	return owner.publish(data)
}

type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window

	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom

	mu   sync.RWMutex
	data []byte
}

func newX11Owner() (*x11Owner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		conn.Close()
		return nil, err
	}
	o := &x11Owner{conn: conn, window: window}
	for name, dst := range map[string]*xproto.Atom{
		"CLIPBOARD": &o.clipboard,
		"TARGETS":   &o.targets,
		"image/png": &o.png,
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			xproto.DestroyWindow(conn, window)
			conn.Close()
			return nil, err
		}
		*dst = reply.Atom
	}
	go o.serve()
	return o, nil
}

func (o *x11Owner) publish(data []byte) error {
	o.mu.Lock()
	o.data = append(o.data[:0:0], data...)
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.data = nil
			o.mu.Unlock()
		}
	}
}

// selectionReply is what a SelectionRequest gets: the property to write on
// the requestor, or AtomNone for a refusal.
type selectionReply struct {
	property xproto.Atom
	typ      xproto.Atom
	format   byte
	data     []byte
}

func (o *x11Owner) reply(e xproto.SelectionRequestEvent) selectionReply {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	o.mu.RLock()
	data := o.data
	o.mu.RUnlock()

	switch {
	case e.Target == o.targets:
		buf := make([]byte, 8)
		xgb.Put32(buf, uint32(o.targets))
		xgb.Put32(buf[4:], uint32(o.png))
		return selectionReply{property: property, typ: xproto.AtomAtom, format: 32, data: buf}
	case e.Target == o.png && len(data) > 0:
		return selectionReply{property: property, typ: o.png, format: 8, data: data}
	}
	return selectionReply{property: xproto.AtomNone}
}

func (o *x11Owner) answer(e xproto.SelectionRequestEvent) {
	r := o.reply(e)
	if r.property != xproto.AtomNone {
		n := uint32(len(r.data)) / uint32(r.format/8)
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, r.property, r.typ, r.format, n, r.data)
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  r.property,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}
