package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
)

const modelProperty = "ro.product.model"

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

type Client struct {
	path string
	run  runFunc
}

var _ ports.BridgeClient = (*Client)(nil)

func NewClient(path string) *Client {
	c := &Client{path: path}
	c.run = c.runCommand
	return c
}

func (c *Client) ListDevices(ctx context.Context) ([]ports.DeviceRecord, error) {
	out, err := c.execute(ctx, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return ParseDevices(out), nil
}

func (c *Client) RouteTable(ctx context.Context, serial string) (string, error) {
	return c.execute(ctx, withSerial(serial, "shell", "ip", "route")...)
}

func (c *Client) DeviceIP(ctx context.Context, serial string) (string, error) {
	out, err := c.RouteTable(ctx, serial)
	if err != nil {
		return "", err
	}
	return ParseRouteIP(out)
}

func (c *Client) ShellProperty(ctx context.Context, serial string, key string) (string, error) {
	out, err := c.execute(ctx, withSerial(serial, "shell", "getprop "+key)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) SetTransportMode(ctx context.Context, serial string, port int) (string, error) {
	return c.execute(ctx, withSerial(serial, "tcpip", strconv.Itoa(port))...)
}

func (c *Client) Connect(ctx context.Context, host string, port int) (string, error) {
	return c.execute(ctx, "connect", fmt.Sprintf("%s:%d", host, port))
}

func (c *Client) Disconnect(ctx context.Context, address string) (string, error) {
	return c.execute(ctx, "disconnect", address)
}

func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.execute(ctx, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) StartServer(ctx context.Context) error {
	_, err := c.execute(ctx, "start-server")
	return err
}

// Model is a convenience for the ro.product.model property.
func (c *Client) Model(ctx context.Context, serial string) (string, error) {
	return c.ShellProperty(ctx, serial, modelProperty)
}

func (c *Client) execute(ctx context.Context, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := c.run(ctx, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", formatError(args, err, stderr)
	}

	return stdout, nil
}

func (c *Client) runCommand(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, c.path, args...)
	hideWindow(cmd)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func withSerial(serial string, args ...string) []string {
	if serial == "" {
		return args
	}
	return append([]string{"-s", serial}, args...)
}

// formatError keeps the tool's stderr as the user-facing message. Launch
// failures, where there is no stderr, say so instead.
func formatError(args []string, err error, stderr string) error {
	if stderr != "" {
		return domain.NewError(domain.KindExec, stderr, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.NewError(domain.KindExec, fmt.Sprintf("adb %s: %v", strings.Join(args, " "), err), err)
	}

	return domain.NewError(domain.KindExec, fmt.Sprintf("failed to execute adb: %v", err), err)
}
