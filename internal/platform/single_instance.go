package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	activateCommand = "activate"
	handoffTimeout  = time.Second
)

// ErrAlreadyRunning indicates another page window already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. While serving, a later
// launch can ask the holder to bring its window forward.
type InstanceGuard struct {
	mu       sync.Mutex
	listener net.Listener
	address  string
	serving  sync.WaitGroup
}

// AcquireSingleInstance binds a localhost port derived from appName. A second
// process with the same name fails with ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Serve answers activation requests from later launches by calling
// onActivate. It returns immediately; Release stops it.
func (guard *InstanceGuard) Serve(onActivate func()) {
	if guard == nil {
		return
	}
	guard.mu.Lock()
	listener := guard.listener
	guard.mu.Unlock()
	if listener == nil {
		return
	}

	guard.serving.Add(1)
	go func() {
		defer guard.serving.Done()
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			if readCommand(conn) == activateCommand && onActivate != nil {
				onActivate()
			}
		}
	}()
}

// Release frees the lock and stops serving. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	listener := guard.listener
	guard.listener = nil
	guard.mu.Unlock()
	if listener == nil {
		return nil
	}
	err := listener.Close()
	guard.serving.Wait()
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// ActivateRunning asks the instance holding appName's lock to show itself.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), handoffTimeout)
	if err != nil {
		return fmt.Errorf("dial running instance: %w", err)
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(handoffTimeout))
	if _, err := fmt.Fprintln(conn, activateCommand); err != nil {
		return fmt.Errorf("send activate: %w", err)
	}
	return nil
}

// PortFromName maps appName onto a stable port in the dynamic range.
func PortFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", PortFromName(appName))
}

func readCommand(conn net.Conn) string {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(handoffTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
