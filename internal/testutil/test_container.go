//go:build integration

package testutil

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
	sharedContainerMu   sync.RWMutex
)

// maxDBNameLen keeps generated names well below MongoDB's 64 byte limit.
const maxDBNameLen = 50

// GetSharedMongoDB returns the package-wide MongoDB container, starting it on
// first use. Call CleanupSharedMongoDB from TestMain once the tests finish.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainerMu.Lock()
		defer sharedContainerMu.Unlock()

		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})

	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainerErr != nil {
		return nil, sharedContainerErr
	}
	return sharedContainer, nil
}

// CleanupSharedMongoDB terminates the shared container, if one was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		return sharedContainer.Cleanup(ctx)
	}
	return nil
}

// SetupTestMainWithMongoDB starts the shared container, runs the tests and
// tears the container down again:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		_, _ = os.Stderr.WriteString("warning: failed to clean up shared MongoDB container: " + err.Error() + "\n")
	}

	return code
}

// SharedContainer returns the shared container. It panics when
// GetSharedMongoDB has not run.
func SharedContainer() *MongoDBContainer {
	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainer == nil {
		panic("shared MongoDB container not initialized, call GetSharedMongoDB first")
	}
	return sharedContainer
}

// GetSharedContainerURI returns the connection URI of the shared container.
func GetSharedContainerURI() string {
	return SharedContainer().URI
}

// SanitizeDBName turns a test name into a MongoDB database name. Characters
// MongoDB rejects become underscores, the name is truncated, and a time based
// suffix keeps parallel runs apart.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	for _, r := range testName {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) > maxDBNameLen {
		name = name[:maxDBNameLen]
	}

	return name + "_" + strconv.FormatInt(time.Now().UnixNano()%1000000, 10)
}
