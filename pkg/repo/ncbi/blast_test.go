package ncbi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
	"github.com/David-OConnor/bio-apis/pkg/repo"
)

const submitPage = `<html>
<body>
<!--QBlastInfoBegin
    RID = 8AZV5W9N013
    RTOE = 28
QBlastInfoEnd
-->
</body>
</html>`

func searchInfoPage(status string, hits bool) string {
	page := "<html>\n<!--QBlastInfoBegin\n\tStatus=" + status + "\n"
	if hits {
		page += "\tThereAreHits=yes\n"
	}
	return page + "QBlastInfoEnd\n-->\n</html>"
}

func newTestClient(t *testing.T, handler http.Handler) repo.Ncbi {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	config.Global().RPC.Ncbi.BlastAddr = srv.URL
	return New()
}

func TestSubmit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Blast.cgi", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Put", r.PostForm.Get("CMD"))
		assert.Equal(t, "blastp", r.PostForm.Get("PROGRAM"))
		assert.Equal(t, "nr", r.PostForm.Get("DATABASE"))
		assert.Equal(t, "MEDAKNIKK", r.PostForm.Get("QUERY"))
		_, _ = w.Write([]byte(submitPage))
	}))

	job, err := client.Submit(context.Background(), &repo.BlastParams{
		Program:  repo.BlastP,
		Database: "nr",
		Sequence: "MEDAKNIKK",
	})
	require.NoError(t, err)
	assert.Equal(t, "8AZV5W9N013", job.RID)
	assert.Equal(t, 28, job.EstimatedSeconds)
}

func TestSubmitInvalidParams(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Submit(context.Background(), &repo.BlastParams{
		Program: "megablast9000", Database: "nr", Sequence: "MEDAK",
	})
	assert.ErrorIs(t, err, code.InvalidInputErr)

	_, err = client.Submit(context.Background(), &repo.BlastParams{
		Program: repo.BlastP, Database: "nr", Sequence: "   ",
	})
	assert.ErrorIs(t, err, code.InvalidInputErr)

	_, err = client.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, code.InvalidInputErr)
}

func TestSubmitNoRID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>error page without the info block</html>"))
	}))

	_, err := client.Submit(context.Background(), &repo.BlastParams{
		Program: repo.BlastP, Database: "nr", Sequence: "MEDAK",
	})
	assert.ErrorIs(t, err, code.DecodeErr)
}

func TestPollRunning(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SearchInfo", r.URL.Query().Get("FORMAT_OBJECT"))
		assert.Equal(t, "8AZV5W9N013", r.URL.Query().Get("RID"))
		_, _ = w.Write([]byte(searchInfoPage("WAITING", false)))
	}))

	status, err := client.Poll(context.Background(), "8AZV5W9N013")
	require.NoError(t, err)
	assert.Equal(t, repo.BlastRunning, status.State)
	assert.Empty(t, status.Payload, "no payload while still running")
}

func TestPollUnknownRID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(searchInfoPage("UNKNOWN", false)))
	}))

	status, err := client.Poll(context.Background(), "EXPIRED123")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, code.NotFoundErr)
}

func TestPollDoneFetchesPayload(t *testing.T) {
	const report = "BLASTP 2.16.0+\n\nQuery= test\n\n>sp|P08659| Luciferin ...\n"
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("FORMAT_OBJECT") == "SearchInfo" {
			_, _ = w.Write([]byte(searchInfoPage("READY", true)))
			return
		}
		assert.Equal(t, "Text", r.URL.Query().Get("FORMAT_TYPE"))
		_, _ = w.Write([]byte(report))
	}))

	status, err := client.Poll(context.Background(), "8AZV5W9N013")
	require.NoError(t, err)
	assert.Equal(t, repo.BlastDone, status.State)
	assert.True(t, status.HasHits)
	assert.Equal(t, report, status.Payload)
}

func TestPollFailed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(searchInfoPage("FAILED", false)))
	}))

	status, err := client.Poll(context.Background(), "8AZV5W9N013")
	require.NoError(t, err)
	assert.Equal(t, repo.BlastFailed, status.State)
}

func TestResultsInvalidFormat(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Results(context.Background(), "8AZV5W9N013", "PDF")
	assert.ErrorIs(t, err, code.InvalidInputErr)

	_, err = client.Results(context.Background(), "", repo.BlastFormatText)
	assert.ErrorIs(t, err, code.InvalidInputErr)
}
