package external

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"weatherwidget.app/internal/mocks"
)

// setupLoggerMock accepts any logger call with up to six fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	args := []interface{}{}
	for i := 0; i < 7; i++ {
		fields := append([]interface{}{}, args...)
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
		args = append(args, mock.Anything)
	}

	return mockLogger
}
