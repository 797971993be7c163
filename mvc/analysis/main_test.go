package analysis

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mipfam/contexts"
	analysisModels "mipfam/models/analysis"
	fft "mipfam/models/constants/family-file-type"
	ga "mipfam/models/constants/gene-annotation"
	so "mipfam/models/constants/sort"
	"mipfam/models/dtos"
	"mipfam/services"
	variantsService "mipfam/services/variants"
	"mipfam/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cmmsTrio = "#FamilyID\tSampleID\tFather\tMother\tSex\tPhenotype\n" +
		"1\tproband\tfather\tmother\t1\t2\n" +
		"1\tfather\t0\t0\t1\t1\n" +
		"1\tmother\t0\t0\t2\t1\n"

	trioVariants = "##source=test\n" +
		"#Chromosome\tVariant_start\tVariant_stop\tReference\tAlternative\tEnsemble_gene_id\tHGNC_symbol\tproband\tfather\tmother\n" +
		"1\t100\t100\tA\tG\tE1\tGENE1\t0/1\t0/0\t0/1\n" +
		"1\t200\t200\tC\tT\tE1;E2\tGENE1;GENE2\t0/1\t0/0\t0/0\n" +
		"1\t250\t250\tG\tC\tE2\tGENE2\t0/1\t0/1\t0/0\n" +
		"1\t300\t300\tG\tA\t-\t-\t1/1\t0/1\t0/1\n" +
		"X\t400\t400\tT\tC\tE3\tGENE3\t1\t0\t0/1\n"
)

type upload struct {
	field    string
	filename string
	content  []byte
}

func multipartRequest(t *testing.T, target string, uploads ...upload) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := writer.CreateFormFile(u.field, u.filename)
		require.NoError(t, err)
		_, err = part.Write(u.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func newContext(req *http.Request, as *services.AnalysisService) (*contexts.AnalysisContext, *httptest.ResponseRecorder) {
	cfg := common.InitConfig()
	rec := httptest.NewRecorder()
	return &contexts.AnalysisContext{
		Context:         echo.New().NewContext(req, rec),
		Config:          cfg,
		AnalysisService: as,
		VariantService:  variantsService.NewVariantService(cfg),
		GeneAnnotation:  ga.HGNC,
		FamilyFileType:  fft.Cmms,
		SortOrder:       so.RankScore,
	}, rec
}

func gzipped(t *testing.T, content string) []byte {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func TestRunAnalysis(t *testing.T) {
	as := services.NewAnalysisService(common.InitConfig())

	t.Run("should answer with the annotated variant file", func(t *testing.T) {
		req := multipartRequest(t, "/analysis/run",
			upload{"family", "family.txt", []byte(cmmsTrio)},
			upload{"variants", "trio.tsv", []byte(trioVariants)})
		gc, rec := newContext(req, as)

		require.NoError(t, RunAnalysis(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
		require.Len(t, lines, 7)
		assert.Equal(t, "##source=test", lines[0])
		assert.True(t, strings.HasSuffix(lines[1], "\tInheritance_model\tCompounds\tRank_score"))
		assert.True(t, strings.HasPrefix(lines[2], "1\t200\t200\tC\tT\t"))
	})

	t.Run("should read a gzipped upload", func(t *testing.T) {
		req := multipartRequest(t, "/analysis/run",
			upload{"family", "family.txt", []byte(cmmsTrio)},
			upload{"variants", "trio.tsv.gz", gzipped(t, trioVariants)})
		gc, rec := newContext(req, as)

		require.NoError(t, RunAnalysis(gc))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, strings.Count(rec.Body.String(), "\n"))
	})

	t.Run("should reject a missing pedigree", func(t *testing.T) {
		req := multipartRequest(t, "/analysis/run",
			upload{"variants", "trio.tsv", []byte(trioVariants)})
		gc, rec := newContext(req, as)

		require.NoError(t, RunAnalysis(gc))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a variant file missing its header", func(t *testing.T) {
		req := multipartRequest(t, "/analysis/run",
			upload{"family", "family.txt", []byte(cmmsTrio)},
			upload{"variants", "broken.tsv", []byte("1\t100\t100\tA\tG\n")})
		gc, rec := newContext(req, as)

		require.NoError(t, RunAnalysis(gc))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should refuse a file already being analysed", func(t *testing.T) {
		busy := as.NewRequest("1", "busy.tsv")
		busy.State = analysisModels.Running
		as.UpdateRequest(busy)
		require.Eventually(t, func() bool { return as.FilenameAlreadyRunning("busy.tsv") },
			time.Second, 10*time.Millisecond)

		req := multipartRequest(t, "/analysis/run",
			upload{"family", "family.txt", []byte(cmmsTrio)},
			upload{"variants", "busy.tsv", []byte(trioVariants)})
		gc, rec := newContext(req, as)

		require.NoError(t, RunAnalysis(gc))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetAllAnalysisRequests(t *testing.T) {
	as := services.NewAnalysisService(common.InitConfig())

	t.Run("should list tracked requests", func(t *testing.T) {
		request := as.NewRequest("1", "listed.tsv")
		request.State = analysisModels.Done
		as.UpdateRequest(request)

		require.Eventually(t, func() bool {
			requests := as.GetRequests()
			return len(requests) == 1 && requests[0].State == analysisModels.Done
		}, time.Second, 10*time.Millisecond)

		gc, rec := newContext(httptest.NewRequest(http.MethodGet, "/analysis/requests", nil), as)
		require.NoError(t, GetAllAnalysisRequests(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var listed []analysisModels.AnalysisResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, request.Id, listed[0].Id)
		assert.Equal(t, "listed.tsv", listed[0].Filename)
		assert.Equal(t, analysisModels.Done, listed[0].State)
	})
}

func TestRunIndexedAnalysis(t *testing.T) {
	as := services.NewAnalysisService(common.InitConfig())

	t.Run("should answer unavailable without an elasticsearch connection", func(t *testing.T) {
		req := multipartRequest(t, "/analysis/indexed?chromosome=1",
			upload{"family", "family.txt", []byte(cmmsTrio)})
		gc, rec := newContext(req, as)
		gc.Chromosome = "1"

		require.NoError(t, RunIndexedAnalysis(gc))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var response dtos.GeneralErrorResponseDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Errors)
	})
}
