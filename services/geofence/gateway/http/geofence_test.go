package gateway_http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/quadgate/tollpass/internal/pkg/http"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

func testGeofenceJSON(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"name":             "Zone A",
		"lat1":             18.5, "lon1": 73.8,
		"lat2":             18.6, "lon2": 73.8,
		"lat3":             18.6, "lon3": 73.9,
		"lat4":             18.5, "lon4": 73.9,
		"charges":          50.0,
		"admin_first_name": "Asha",
		"admin_last_name":  "Kulkarni",
		"created_at":       "2025-03-01T10:00:00Z",
	}
}

func TestGeofenceClient_List(t *testing.T) {
	tests := []struct {
		name           string
		mockStatusCode int
		mockBody       interface{}
		expectError    bool
		expectCount    int
	}{
		{
			name:           "successful list",
			mockStatusCode: http.StatusOK,
			mockBody:       []interface{}{testGeofenceJSON("gf-1"), testGeofenceJSON("gf-2")},
			expectError:    false,
			expectCount:    2,
		},
		{
			name:           "empty list",
			mockStatusCode: http.StatusOK,
			mockBody:       []interface{}{},
			expectError:    false,
			expectCount:    0,
		},
		{
			name:           "server error",
			mockStatusCode: http.StatusInternalServerError,
			mockBody:       nil,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/geofence/show", r.URL.Path)

				w.WriteHeader(tt.mockStatusCode)
				if tt.mockBody != nil {
					json.NewEncoder(w).Encode(tt.mockBody)
				}
			}))
			defer server.Close()

			client := NewGeofenceClient(server.URL, 5*time.Second)
			result, err := client.List(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tt.expectCount)
				if tt.expectCount > 0 {
					assert.Equal(t, "Zone A", result[0].Name)
					assert.Equal(t, 50.0, result[0].Charges)
					assert.Equal(t, 18.5, result[0].Lat1)
				}
			}
		})
	}
}

func TestGeofenceClient_List_PartialRecordIsTransportError(t *testing.T) {
	partial := testGeofenceJSON("gf-1")
	delete(partial, "lon3")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]interface{}{partial})
	}))
	defer server.Close()

	client := NewGeofenceClient(server.URL, 5*time.Second)
	result, err := client.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	var te *httpclient.TransportError
	assert.True(t, errors.As(err, &te))
}

func TestGeofenceClient_GetAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/asha@tollpass.in", r.URL.Path)

		json.NewEncoder(w).Encode(models.AdminResponse{Admin: models.Admin{
			ID:        "adm-1",
			FirstName: "Asha",
			LastName:  "Kulkarni",
			Email:     "asha@tollpass.in",
		}})
	}))
	defer server.Close()

	client := NewGeofenceClient(server.URL, 5*time.Second)
	admin, err := client.GetAdmin(context.Background(), "asha@tollpass.in")

	require.NoError(t, err)
	assert.Equal(t, "adm-1", admin.ID)
	assert.Equal(t, "Asha", admin.FirstName)
}

func TestGeofenceClient_Create(t *testing.T) {
	form := models.GeofenceForm{
		Name: "Zone A",
		Lat1: 18.5, Lon1: 73.8,
		Lat2: 18.6, Lon2: 73.8,
		Lat3: 18.6, Lon3: 73.9,
		Lat4: 18.5, Lon4: 73.9,
		Charges: 50,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/geofence/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.GeofenceWriteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "adm-1", req.AdminID)
		assert.Equal(t, "Zone A", req.Name)

		created := testGeofenceJSON("gf-new")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer server.Close()

	client := NewGeofenceClient(server.URL, 5*time.Second)
	result, err := client.Create(context.Background(), "adm-1", form)

	require.NoError(t, err)
	assert.Equal(t, "gf-new", result.ID)
	assert.Equal(t, 50.0, result.Charges)
}

func TestGeofenceClient_Create_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "charges must be non-negative"})
	}))
	defer server.Close()

	client := NewGeofenceClient(server.URL, 5*time.Second)
	_, err := client.Create(context.Background(), "adm-1", models.GeofenceForm{})

	require.Error(t, err)
	var ve *httpclient.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "charges must be non-negative", ve.Message)
}

func TestGeofenceClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/geofence/update/gf-1", r.URL.Path)

		updated := testGeofenceJSON("gf-1")
		updated["name"] = "Zone A renamed"
		json.NewEncoder(w).Encode(updated)
	}))
	defer server.Close()

	client := NewGeofenceClient(server.URL, 5*time.Second)
	result, err := client.Update(context.Background(), "gf-1", "adm-1", models.GeofenceForm{
		Name: "Zone A renamed",
		Lat1: 18.5, Lon1: 73.8,
		Lat2: 18.6, Lon2: 73.8,
		Lat3: 18.6, Lon3: 73.9,
		Lat4: 18.5, Lon4: 73.9,
		Charges: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, "gf-1", result.ID)
	assert.Equal(t, "Zone A renamed", result.Name)
}

func TestGeofenceClient_Delete(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockStatusCode int
		mockMessage    string
		expectError    bool
		expectNotFound bool
	}{
		{
			name:           "successful delete",
			id:             "gf-1",
			mockStatusCode: http.StatusOK,
			mockMessage:    "Geofence deleted successfully",
			expectError:    false,
		},
		{
			name:           "delete missing id surfaces server message",
			id:             "gf-missing",
			mockStatusCode: http.StatusNotFound,
			mockMessage:    "Geofence not found",
			expectError:    true,
			expectNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/geofence/delete/"+tt.id, r.URL.Path)

				w.WriteHeader(tt.mockStatusCode)
				json.NewEncoder(w).Encode(map[string]string{"message": tt.mockMessage})
			}))
			defer server.Close()

			client := NewGeofenceClient(server.URL, 5*time.Second)
			err := client.Delete(context.Background(), tt.id)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.expectNotFound {
				var nfe *httpclient.NotFoundError
				require.True(t, errors.As(err, &nfe))
				assert.Equal(t, "Geofence not found", nfe.Message)
			}
		})
	}
}
