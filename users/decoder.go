package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/schema"
	g "github.com/reoring/goskema/dsl"
)

const (
	headerCode          = "X-Code"
	headerCorrelationID = "X-CorrelationID"
	headerChallenge     = "WWW-Authenticate"
)

var (
	userSchema = schema.New[User]("{ name: string }",
		g.ObjectOf[User]().
			Field("name", g.StringOf[string]()).
			Require("name").
			UnknownStrip().
			MustBind(),
	)

	usersSchema = schema.Array(userSchema)

	unprocessableSchema = schema.New[Unprocessable]("{ code: number, correlationId: string }",
		g.ObjectOf[Unprocessable]().
			Field("code", g.SchemaOf[json.Number](g.NumberJSON())).
			Field("correlationId", g.StringOf[string]()).
			Require("code", "correlationId").
			UnknownStrip().
			MustBind(),
	)
)

func asResult[A Result](a A) Result {
	return a
}

// decodeUsers parses a JSON array of users
var decodeUsers = fetcher.Map(schema.Decoder(usersSchema), func(u []User) Result {
	return Users(u)
})

// decodeBadRequest keeps the text body as the error message
var decodeBadRequest = fetcher.Map(fetcher.TextDecoder, func(s string) Result {
	return BadRequest{Message: strings.TrimSpace(s)}
})

// decodeUnauthorised keeps the text body as the error message and requires
// the WWW-Authenticate challenge
func decodeUnauthorised(ctx context.Context, res *http.Response) (Result, error) {
	challenge, err := fetcher.Header(headerChallenge)(ctx, res)
	if err != nil {
		return nil, err
	}

	msg, err := fetcher.TextDecoder(ctx, res)
	if err != nil {
		return nil, err
	}

	return Unauthorised{Message: strings.TrimSpace(msg), Challenge: challenge}, nil
}

// unprocessableHeaders collects the 422 headers into an untyped value for
// validation. Missing headers are left out, so they are reported as
// missing, and a code that is not a JSON number (NaN, Inf, text) is kept as
// text so that validation rejects it.
func unprocessableHeaders(ctx context.Context, res *http.Response) (interface{}, error) {
	v := map[string]interface{}{}

	if code := res.Header.Get(headerCode); code != "" {
		if n, ok := jsonNumber(code); ok {
			v["code"] = n
		} else {
			v["code"] = code
		}
	}

	if id := res.Header.Get(headerCorrelationID); id != "" {
		v["correlationId"] = id
	}

	return v, nil
}

// jsonNumber reports whether s is a JSON number literal, keeping its text
func jsonNumber(s string) (json.Number, bool) {
	var n json.Number
	if err := json.Unmarshal([]byte(s), &n); err != nil || n == "" {
		return "", false
	}
	return n, true
}

var decodeUnprocessable = fetcher.Map(
	fetcher.Refine(fetcher.Decoder[interface{}](unprocessableHeaders), schema.Validator(unprocessableSchema)),
	asResult[Unprocessable],
)
