package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobsFixture = `{"jobs":[
	{"id":1,"title":"Software Engineer","salary":120000,"equity":"0.05","companyHandle":"davis","companyName":"Davis Group"},
	{"id":2,"title":"Baker","salary":48000,"companyHandle":"abc-labs","companyName":"ABC Labs"},
	{"id":3,"title":"Data Engineer","companyHandle":"davis","companyName":"Davis Group"}
]}`

func newJobsServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(jobsFixture))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestListJobs_NoFilterReturnsAll(t *testing.T) {
	server := newJobsServer(t)
	client := NewClient(server.URL, StaticToken("t"))

	jobs, err := client.ListJobs(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	require.NotNil(t, jobs[0].Salary)
	assert.Equal(t, 120000, *jobs[0].Salary)
	require.NotNil(t, jobs[0].Equity)
	assert.Equal(t, "0.05", jobs[0].Equity.String())
	assert.Nil(t, jobs[2].Salary)
}

func TestListJobs_TitleFilterKeepsMatchingInOrder(t *testing.T) {
	server := newJobsServer(t)
	client := NewClient(server.URL, StaticToken("t"))

	jobs, err := client.ListJobs(context.Background(), "engineer")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Software Engineer", jobs[0].Title)
	assert.Equal(t, "Data Engineer", jobs[1].Title)
}

func TestListJobs_NoMatchesReturnsEmpty(t *testing.T) {
	server := newJobsServer(t)
	client := NewClient(server.URL, StaticToken("t"))

	jobs, err := client.ListJobs(context.Background(), "astronaut")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
