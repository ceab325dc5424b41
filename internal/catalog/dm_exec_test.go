package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_String(t *testing.T) {
	blocker := int16(61)
	wait := "LCK_M_X"
	r := Request{
		SessionID:         57,
		RequestID:         0,
		Status:            "suspended",
		Command:           "UPDATE",
		DatabaseID:        5,
		BlockingSessionID: &blocker,
		WaitType:          &wait,
		WaitTime:          1520,
	}
	assert.Equal(t,
		"session_id=57 request_id=0 status=suspended command=UPDATE database_id=5 blocking_session_id=61 wait_type=LCK_M_X wait_time=1520ms",
		r.String(),
	)
}

func TestRequest_StringWithoutWait(t *testing.T) {
	r := Request{SessionID: 52, Status: "running", Command: "SELECT", DatabaseID: 1}
	assert.Equal(t,
		"session_id=52 request_id=0 status=running command=SELECT database_id=1 blocking_session_id=- wait_type=- wait_time=0ms",
		r.String(),
	)
}
