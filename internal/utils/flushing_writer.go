package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes to the console stream and flushes buffered destinations after every message.
type FlushingWriter struct {
	destination io.Writer
	mutex       sync.Mutex
}

// NewFlushingWriter wraps destination once; wrapping an existing FlushingWriter returns it unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	switch typedDestination := destination.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return typedDestination
	default:
		return &FlushingWriter{destination: destination}
	}
}

// Write forwards data to the destination and flushes it when the destination buffers output.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	bufferedDestination, buffers := writer.destination.(flusher)
	if !buffers {
		return bytesWritten, nil
	}
	return bytesWritten, bufferedDestination.Flush()
}
