package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"9fans.net/go/acme"
)

// acmeSelection returns the text selected in the
// current acme window.
func acmeSelection() (string, error) {
	winid := os.Getenv("winid")
	if winid == "" {
		return "", fmt.Errorf("$winid not set - not running inside acme?")
	}
	id, err := strconv.Atoi(winid)
	if err != nil {
		return "", fmt.Errorf("invalid $winid %q", winid)
	}
	win, err := acme.Open(id, nil)
	if err != nil {
		return "", fmt.Errorf("cannot open acme window: %v", err)
	}
	defer win.CloseFiles()
	_, _, err = win.ReadAddr() // make sure address file is already open.
	if err != nil {
		return "", fmt.Errorf("cannot read address: %v", err)
	}
	if err := win.Ctl("addr=dot"); err != nil {
		return "", fmt.Errorf("cannot set addr=dot: %v", err)
	}
	sel, err := win.ReadAll("xdata")
	if err != nil {
		return "", fmt.Errorf("cannot read selection: %v", err)
	}
	expr := strings.TrimSpace(string(sel))
	if expr == "" {
		return "", fmt.Errorf("no expression selected")
	}
	return expr, nil
}
