package taskapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/backend/taskapi"
	"taskman/internal/config"
	"taskman/internal/service"
	"taskman/internal/session"
)

// newClient builds a client against srv with its own session store.
func newClient(t *testing.T, srv *httptest.Server) (*taskapi.Client, *session.Store) {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.APIURL = srv.URL

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client, err := taskapi.New(cfg, store)
	require.NoError(t, err)
	return client, store
}

func TestAuthTransport(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"message": "ok", "data": []any{}})
	}))
	defer srv.Close()

	client, store := newClient(t, srv)

	t.Run("no token means no header", func(t *testing.T) {
		_, err := client.Tasks(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})

	t.Run("token becomes bearer header", func(t *testing.T) {
		require.NoError(t, store.SaveToken("tok-123", "a@x.com"))
		_, err := client.Tasks(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Equal(t, []string{"Bearer tok-123"}, gotAuth)
	})
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body["userEmail"] {
		case "a@x.com":
			json.NewEncoder(w).Encode(map[string]string{"token": "T"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "User not found"})
		}
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)

	t.Run("known user", func(t *testing.T) {
		token, err := client.Login(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Equal(t, "T", token)
	})

	t.Run("unknown user is 404 with message", func(t *testing.T) {
		_, err := client.Login(context.Background(), "b@x.com")
		require.Error(t, err)
		require.True(t, service.IsNotFound(err))
		require.Equal(t, "User not found", service.ErrorMessage(err, "fallback"))
	})
}

func TestClient_CheckUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/email", r.URL.Path)
		exists := r.URL.Query().Get("email") == "a@x.com"
		json.NewEncoder(w).Encode(map[string]bool{"exists": exists})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)

	exists, err := client.CheckUser(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = client.CheckUser(context.Background(), "b@x.com")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestClient_CreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	require.NoError(t, client.CreateUser(context.Background(), "a@x.com"))
}

func TestClient_Tasks_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/user/a@x.com", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Tasks fetched",
			"data": []service.Task{
				{ID: "1", UserEmail: "a@x.com", Title: "one"},
				{ID: "2", UserEmail: "a@x.com", Title: "two", Completed: true},
			},
		})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	tasks, err := client.Tasks(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "one", tasks[0].Title)
	require.True(t, tasks[1].Completed)
}

func TestClient_CreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks", r.URL.Path)

		var nt service.NewTask
		require.NoError(t, json.NewDecoder(r.Body).Decode(&nt))
		require.Equal(t, "a@x.com", nt.UserEmail)

		created := service.Task{ID: "42", UserEmail: nt.UserEmail, Title: nt.Title, CreatedAt: "2026-09-01T00:00:00Z"}
		json.NewEncoder(w).Encode(map[string]any{"message": "Task created", "data": created})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	task, err := client.CreateTask(context.Background(), service.NewTask{UserEmail: "a@x.com", Title: "new"})
	require.NoError(t, err)
	require.Equal(t, "42", task.ID)
	require.Equal(t, "2026-09-01T00:00:00Z", task.CreatedAt)
}

func TestClient_UpdateTask_SendsOnlySetFields(t *testing.T) {
	var rawBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/42", r.URL.Path)
		rawBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Task updated",
			"data":    service.Task{ID: "42", Title: "one", Completed: true},
		})
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	completed := true
	updated, err := client.UpdateTask(context.Background(), "42", service.TaskPatch{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)

	// Partial update: untouched fields must not appear in the body.
	require.JSONEq(t, `{"completed":true}`, string(rawBody))
}

func TestClient_DeleteTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	require.NoError(t, client.DeleteTask(context.Background(), "42"))
}

func TestClient_ErrorWithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, _ := newClient(t, srv)
	_, err := client.Tasks(context.Background(), "a@x.com")
	require.Error(t, err)

	var apiErr *service.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "generic", service.ErrorMessage(err, "generic"))
}
