package ledgerline

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full HTTP request/response dumps for troubleshooting
// API communication problems (malformed requests, auth failures, unexpected
// responses).
//
// Enable it with WithDebugLogging(true) or by setting LEDGERLINE_DEBUG=true
// (or DEBUG=true) in the environment. The dumps include headers and bodies,
// tokens among them, so keep it out of production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled
// via the environment: LEDGERLINE_DEBUG=true for targeted client
// debugging, or DEBUG=true for broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("LEDGERLINE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
