package bufread

import (
	log "github.com/sirupsen/logrus"
)

func logFill(bytes int, partial bool) {
	log.WithFields(log.Fields{"bytes": bytes, "partial": partial}).Trace("Buffer refilled")
}

func logGrow(from int, to int) {
	log.WithFields(log.Fields{"from": from, "to": to}).Trace("Buffer grown")
}

func logSwallowedFillError(err error) {
	log.WithFields(log.Fields{"error": err}).Warn("Refill failed, serving already buffered bytes")
}
