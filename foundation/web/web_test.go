package web_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/web"
)

const (
	success = "✓"
	failed  = "✗"
)

type payload struct {
	Name string `json:"name"`
}

func (p payload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func Test_Handle(t *testing.T) {
	t.Log("Given the need to route requests through the web app.")
	{
		shutdown := make(chan os.Signal, 1)

		var order []string
		mw := func(tag string) web.Middleware {
			return func(handler web.Handler) web.Handler {
				return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
					order = append(order, tag)
					return handler(ctx, w, r)
				}
			}
		}

		app := web.NewApp(shutdown, mw("app"))

		var traceID, account string
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v, err := web.GetValues(ctx)
			if err != nil {
				return err
			}
			traceID = v.TraceID
			account = web.Param(r, "account")

			var p payload
			if err := web.Decode(r, &p); err != nil {
				return web.Respond(ctx, w, err.Error(), http.StatusBadRequest)
			}

			return web.Respond(ctx, w, p, http.StatusOK)
		}
		app.Handle(http.MethodPost, "v1", "/echo/:account", h, mw("route"))

		t.Logf("\tTest 0:\tWhen handling a valid request.")
		{
			r := httptest.NewRequest(http.MethodPost, "/v1/echo/minerA", strings.NewReader(`{"name":"kennedy"}`))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 0:\tShould get a 200 status code, got %d: %s", failed, w.Code, w.Body.String())
			}
			t.Logf("\t%s\tTest 0:\tShould get a 200 status code.", success)

			if w.Body.String() != `{"name":"kennedy"}` {
				t.Fatalf("\t%s\tTest 0:\tShould get the payload back, got %s", failed, w.Body.String())
			}
			t.Logf("\t%s\tTest 0:\tShould get the payload back.", success)

			if account != "minerA" || traceID == "" {
				t.Fatalf("\t%s\tTest 0:\tShould see the params and trace id, got %q %q", failed, account, traceID)
			}
			t.Logf("\t%s\tTest 0:\tShould see the params and trace id.", success)

			if strings.Join(order, ",") != "app,route" {
				t.Fatalf("\t%s\tTest 0:\tShould run app middleware first, got %v", failed, order)
			}
			t.Logf("\t%s\tTest 0:\tShould run app middleware first.", success)
		}

		t.Logf("\tTest 1:\tWhen handling a payload that fails validation.")
		{
			r := httptest.NewRequest(http.MethodPost, "/v1/echo/minerA", strings.NewReader(`{"name":""}`))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("\t%s\tTest 1:\tShould get a 400 status code, got %d", failed, w.Code)
			}
			t.Logf("\t%s\tTest 1:\tShould get a 400 status code.", success)
		}
	}
}

func Test_Shutdown(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	app := web.NewApp(shutdown)

	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.NewShutdownError("integrity issue")
	}
	app.Handle(http.MethodGet, "", "/down", h)

	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/down", nil))

	select {
	case <-shutdown:
	default:
		t.Fatalf("Should signal a shutdown for a shutdown error.")
	}

	if !web.IsShutdown(web.NewShutdownError("x")) {
		t.Fatalf("Should detect a shutdown error.")
	}
}
