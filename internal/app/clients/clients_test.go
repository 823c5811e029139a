package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const christine = "c3540a89-cb47-4c96-888e-ff96708db4d8"

func studentsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/students/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case christine:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"studentId":"` + christine + `","firstName":"Christine","lastName":"Gerard","program":"Computer Science","stuff":"stuff"}`))
		case "broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "garbage":
			_, _ = w.Write([]byte("not json"))
		case "slow":
			time.Sleep(200 * time.Millisecond)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetStudent_Found(t *testing.T) {
	srv := studentsServer(t)
	client := NewHTTPStudentClient(srv.URL+"/", srv.Client(), 0)

	res := client.GetStudent(context.Background(), christine)

	require.Equal(t, Found, res.Outcome)
	require.NotNil(t, res.Value)
	assert.Equal(t, "Christine", res.Value.FirstName)
	assert.Equal(t, "Gerard", res.Value.LastName)
	assert.Equal(t, "Computer Science", res.Value.Program)
	assert.NoError(t, res.Err)
}

func TestGetStudent_NotFound(t *testing.T) {
	srv := studentsServer(t)
	client := NewHTTPStudentClient(srv.URL, srv.Client(), 0)

	res := client.GetStudent(context.Background(), "c3540a89-cb47-4c96-888e-ff96708db4j4")

	assert.Equal(t, NotFound, res.Outcome)
	assert.Nil(t, res.Value)
	assert.NoError(t, res.Err)
}

func TestGetStudent_ServerErrorIsTransportError(t *testing.T) {
	srv := studentsServer(t)
	client := NewHTTPStudentClient(srv.URL, srv.Client(), 0)

	res := client.GetStudent(context.Background(), "broken")

	require.Equal(t, TransportError, res.Outcome)
	var statusErr *StatusError
	require.True(t, errors.As(res.Err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestGetStudent_UndecodableBody(t *testing.T) {
	srv := studentsServer(t)
	client := NewHTTPStudentClient(srv.URL, srv.Client(), 0)

	res := client.GetStudent(context.Background(), "garbage")
	assert.Equal(t, TransportError, res.Outcome)
	assert.Error(t, res.Err)
}

func TestGetStudent_Timeout(t *testing.T) {
	srv := studentsServer(t)
	client := NewHTTPStudentClient(srv.URL, srv.Client(), 20*time.Millisecond)

	res := client.GetStudent(context.Background(), "slow")
	assert.Equal(t, TransportError, res.Outcome)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestGetCourse_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewHTTPCourseClient(url, nil, 0)
	res := client.GetCourse(context.Background(), "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223")

	assert.Equal(t, TransportError, res.Outcome)
	assert.Error(t, res.Err)
}

func TestGetCourse_Found(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"courseId":"9a29fff7-564a-4cc9-8fe1-36f6ca9bc223","courseNumber":"trs-075","courseName":"Web Services","numHours":45,"numCredits":3.0,"department":"Computer Science"}`))
	}))
	t.Cleanup(srv.Close)

	res := NewHTTPCourseClient(srv.URL, srv.Client(), 0).GetCourse(context.Background(), "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223")

	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, "/api/v1/courses/9a29fff7-564a-4cc9-8fe1-36f6ca9bc223", gotPath)
	assert.Equal(t, "trs-075", res.Value.CourseNumber)
	assert.Equal(t, 45, res.Value.NumHours)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
