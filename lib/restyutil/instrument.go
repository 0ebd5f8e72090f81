package restyutil

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// InstrumentClient dumps every exchange the client makes to `output`.
// `output` can be nil, in which case the function is a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}
	client.OnAfterResponse(i.onAfterResponse)
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	id := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", res.Request.Method, res.Request.URL)
	fmt.Fprintf(&b, "status: %s\n\n", res.Status())
	b.Write(res.Body())

	i.output.Write(id, b.String())
	slog.Debug(
		"dumped http exchange",
		"id", id,
		"method", res.Request.Method,
		"url", res.Request.URL,
	)
	return nil
}
