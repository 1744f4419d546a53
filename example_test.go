package requestid_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/requestid"
)

func ExampleResolve() {
	generate := func() string { return "3b241101-e2bb-4255-8caf-4136c566a964" }

	fmt.Println(requestid.Resolve("", "", generate))
	fmt.Println(requestid.Resolve("FOO-123", "FOO-", generate))
	fmt.Println(requestid.Resolve("abc123", "", generate))

	// Output:
	// 3b241101-e2bb-4255-8caf-4136c566a964
	// FOO-123
	// abc123, 3b241101-e2bb-4255-8caf-4136c566a964
}

func ExampleNew() {
	handler := requestid.New(requestid.WithUniqueValuePrefix("FOO-"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Println("handling request", requestid.FromContext(r.Context()))
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "FOO-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	fmt.Println("response header", rec.Header().Get(requestid.Header))

	// Output:
	// handling request FOO-123
	// response header FOO-123
}

func ExampleMiddleware() {
	mux := http.NewServeMux()
	mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		fmt.Println("request ID present:", requestid.FromContext(r.Context()) != "")
	})

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	requestid.Middleware(mux).ServeHTTP(httptest.NewRecorder(), req)

	// Output:
	// request ID present: true
}
