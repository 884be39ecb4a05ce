package mongostore

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes meaning the deployment cannot run transactions:
// 20 IllegalOperation, 51 and 263 OperationNotSupportedInTransaction.
var txnUnsupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err says the server cannot run a
// transaction, typically because it is a standalone mongod.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && txnUnsupportedCodes[ce.Code] {
		return true
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "replica set"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "session"):
		return true
	case strings.Contains(msg, "session") && strings.Contains(msg, "not supported"):
		return true
	case strings.Contains(msg, "illegal operation"):
		return true
	}
	return false
}
