// Package httpclient implements the outbound HTTP client of the service.
//
// A [Client] owns one pooled resty client, created lazily on first use (or
// eagerly with [Client.Open]) and released with [Client.Close]. Every verb
// method returns a [Result] instead of an error: a request either yields the
// response of the first successful attempt or a [*RequestError] describing
// why it failed.
//
// Transport failures are classified with [Classify]. Failures whose kind is
// listed in [Config.Retryable] are retried immediately, without delay, until
// [Config.MaxRetries] attempts have been made. Any other failure ends the
// request after the attempt that produced it. HTTP error statuses are not
// failures: a 500 response is a successful exchange and is returned as is.
package httpclient
