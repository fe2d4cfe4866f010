package web

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindPostForm(t *testing.T, form url.Values) []string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	var dst PostForm
	return Bind(c, &dst)
}

func TestBind_PostFormValid(t *testing.T) {
	errs := bindPostForm(t, url.Values{
		"title":    {"Hello World"},
		"category": {"general"},
		"content":  {"long enough content"},
	})
	if errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestBind_PostFormBounds(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"title too short", url.Values{"title": {"hi"}, "category": {"general"}, "content": {"long enough content"}}},
		{"title too long", url.Values{"title": {strings.Repeat("a", 201)}, "category": {"general"}, "content": {"long enough content"}}},
		{"category too short", url.Values{"title": {"Hello World"}, "category": {"ok"}, "content": {"long enough content"}}},
		{"content too short", url.Values{"title": {"Hello World"}, "category": {"general"}, "content": {"tiny"}}},
		{"missing fields", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := bindPostForm(t, tt.form); errs == nil {
				t.Error("expected validation errors")
			}
		})
	}
}
