package common_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/cnnkit/internal/common"
)

func newObservedToolkit(testInstance *testing.T) (*common.Toolkit, *observer.ObservedLogs) {
	testInstance.Helper()
	observerCore, observedLogs := observer.New(zap.DebugLevel)
	return common.NewToolkit(zap.New(observerCore)), observedLogs
}
