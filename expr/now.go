package expr

import (
	"time"

	"github.com/dynasql/dynasql/value"
)

func defaultNow() value.Value {
	return value.ExtValue("DateTime", value.StringValue(time.Now().UTC().Format(time.RFC3339)))
}
