//go:build linux

package player

/*
#include <mpv/client.h>
#include <stdlib.h>

// osd_overlay runs the osd-overlay command with named arguments. A NULL
// data clears the slot; otherwise data is drawn as ASS events at the
// given PlayRes.
static int osd_overlay(mpv_handle *h, int id, const char *data, int res_x, int res_y) {
    char *keys[6] = {"name", "id", "format", "data", "res_x", "res_y"};
    mpv_node vals[6];
    int n = 3;

    vals[0].format = MPV_FORMAT_STRING;
    vals[0].u.string = "osd-overlay";
    vals[1].format = MPV_FORMAT_INT64;
    vals[1].u.int64 = id;
    vals[2].format = MPV_FORMAT_STRING;
    vals[2].u.string = data ? "ass-events" : "none";

    if (data) {
        vals[3].format = MPV_FORMAT_STRING;
        vals[3].u.string = (char *)data;
        vals[4].format = MPV_FORMAT_INT64;
        vals[4].u.int64 = res_x;
        vals[5].format = MPV_FORMAT_INT64;
        vals[5].u.int64 = res_y;
        n = 6;
    }

    mpv_node_list list = {.num = n, .values = vals, .keys = keys};
    mpv_node cmd = {.format = MPV_FORMAT_NODE_MAP, .u.list = &list};
    mpv_node result;
    int err = mpv_command_node(h, &cmd, &result);
    if (err >= 0) {
        mpv_free_node_contents(&result);
    }
    return err;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/gen2brain/go-mpv"
)

// handle digs the raw client handle out of go-mpv's Mpv, whose only field
// is the *C.mpv_handle.
func handle(m *mpv.Mpv) *C.mpv_handle {
	return *(**C.mpv_handle)(unsafe.Pointer(m))
}

// osdOverlaySet goes through mpv_command_node because the string command
// form cannot carry res_x and res_y.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	cData := C.CString(data)
	defer C.free(unsafe.Pointer(cData))
	if rc := C.osd_overlay(handle(m), C.int(id), cData, C.int(resX), C.int(resY)); rc < 0 {
		return fmt.Errorf("osd-overlay %d: mpv error %d", id, int(rc))
	}
	return nil
}

func osdOverlayRemove(m *mpv.Mpv, id int) error {
	if rc := C.osd_overlay(handle(m), C.int(id), nil, 0, 0); rc < 0 {
		return fmt.Errorf("osd-overlay %d remove: mpv error %d", id, int(rc))
	}
	return nil
}
