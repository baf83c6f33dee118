//go:build linux

package overlay

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const netWMStateAdd = 1

// setTopmost asks the X11 window manager to add _NET_WM_STATE_ABOVE.
func setTopmost(ctx any) error {
	x11, ok := ctx.(driver.X11WindowContext)
	if !ok || x11.WindowHandle == 0 {
		return errLevelUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	state, err := internAtom(conn, "_NET_WM_STATE")
	if err != nil {
		return err
	}
	above, err := internAtom(conn, "_NET_WM_STATE_ABOVE")
	if err != nil {
		return err
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(x11.WindowHandle),
		Type:   state,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{netWMStateAdd, uint32(above), 0, 1, 0}),
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	return xproto.SendEventChecked(conn, false, root, mask, string(ev.Bytes())).Check()
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}
