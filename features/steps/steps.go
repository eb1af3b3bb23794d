package steps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/ONSdigital/dp-fetcher/users"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/rdumont/assistdog"
)

func (c *Component) RegisterSteps(ctx *godog.ScenarioContext) {
	c.apiFeature.RegisterSteps(ctx)

	ctx.Step(`^the users API returns these users:$`, c.theUsersAPIReturnsTheseUsers)
	ctx.Step(`^the users API returns status (\d+) with body "([^"]*)"$`, c.theUsersAPIReturnsStatusWithBody)
	ctx.Step(`^the users API returns status (\d+) with this body:$`, c.theUsersAPIReturnsStatusWithThisBody)
	ctx.Step(`^the users API returns status (\d+) with headers:$`, c.theUsersAPIReturnsStatusWithHeaders)
	ctx.Step(`^the service should relay these users:$`, c.theServiceShouldRelayTheseUsers)
	ctx.Step(`^the metrics should contain:$`, c.theMetricsShouldContain)
}

func (c *Component) theUsersAPIReturnsTheseUsers(table *godog.Table) error {
	expected, err := assistdog.NewDefault().CreateSlice(new(users.User), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	b, err := json.Marshal(expected)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	c.UsersAPI.NewHandler().
		Get("/users").
		Reply(http.StatusOK).
		BodyString(string(b))

	return nil
}

func (c *Component) theUsersAPIReturnsStatusWithBody(status int, body string) error {
	c.UsersAPI.NewHandler().
		Get("/users").
		Reply(status).
		BodyString(body)

	return nil
}

func (c *Component) theUsersAPIReturnsStatusWithThisBody(status int, body *godog.DocString) error {
	return c.theUsersAPIReturnsStatusWithBody(status, body.Content)
}

func (c *Component) theUsersAPIReturnsStatusWithHeaders(status int, table *godog.Table) error {
	res := c.UsersAPI.NewHandler().
		Get("/users").
		Reply(status)

	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected a header name and value, got %d cells", len(row.Cells))
		}
		res.SetHeader(row.Cells[0].Value, row.Cells[1].Value)
	}

	return nil
}

func (c *Component) theServiceShouldRelayTheseUsers(table *godog.Table) error {
	expected, err := assistdog.NewDefault().CreateSlice(new(users.User), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	b, err := io.ReadAll(c.apiFeature.HttpResponse.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var got []*users.User
	if err := json.Unmarshal(b, &got); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w body: %s", err, b)
	}

	if diff := cmp.Diff(got, expected); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *Component) theMetricsShouldContain(lines *godog.DocString) error {
	if c.router == nil {
		return fmt.Errorf("service has not been initialised")
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		return fmt.Errorf("unexpected metrics status: %d", w.Code)
	}

	for _, line := range strings.Split(strings.TrimSpace(lines.Content), "\n") {
		if !strings.Contains(w.Body.String(), strings.TrimSpace(line)) {
			return fmt.Errorf("metrics do not contain %q", line)
		}
	}

	return nil
}
