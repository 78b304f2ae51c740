package databrowser

import (
	"tidyhome/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("databrowser")

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes every client constructed afterwards
// dump its full request/response pairs to out. Used by the CLI in
// verbose mode.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}

func instrument(client *resty.Client) {
	restyutil.InstrumentClient(client, "databrowser/http", instrumentOutput)
}
