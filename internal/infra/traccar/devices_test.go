package traccar

import (
	"context"
	"net/http"
	"testing"
	"time"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceCalls_RequireCredential(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx := context.Background()
	blank := &entity.SessionCredential{Value: "   "}

	_, err := client.ListDevices(ctx, nil)
	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	_, err = client.GetDevice(ctx, 1, blank)
	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	_, err = client.CreateDevice(ctx, &entity.Device{Name: "van"}, blank)
	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	_, err = client.UpdateDevice(ctx, 1, &entity.Device{Name: "van"}, nil)
	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	assert.ErrorIs(t, client.DeleteDevice(ctx, 1, nil), service.ErrTrackingValidation)
	_, err = client.GetPositions(ctx, blank, entity.PositionQuery{})
	assert.ErrorIs(t, err, service.ErrTrackingValidation)

	assert.Empty(t, *calls)
}

func TestListDevices_SendsCookie(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":1,"name":"Van","uniqueId":"IMEI1","status":"online"}]`)
	})

	token := &entity.SessionCredential{Value: "tok", Source: entity.CredentialSourceToken}
	devices, err := client.ListDevices(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "IMEI1", devices[0].UniqueID)
	assert.Equal(t, "JSESSIONID=tok", (*calls)[0].Header.Get("Cookie"))
	assert.Empty(t, (*calls)[0].Header.Get("Authorization"))
}

func TestListDevices_NullBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `null`)
	})

	devices, err := client.ListDevices(context.Background(), &entity.SessionCredential{Value: "c"})
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestGetDevice(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantNil bool
	}{
		{name: "found", body: `[{"id":7,"name":"Car"}]`},
		{name: "none", body: `[]`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			device, err := client.GetDevice(context.Background(), 7, &entity.SessionCredential{Value: "c"})
			require.NoError(t, err)
			assert.Equal(t, "id=7", (*calls)[0].Query)
			if tt.wantNil {
				assert.Nil(t, device)

				return
			}
			require.NotNil(t, device)
			assert.Equal(t, int64(7), device.ID)
		})
	}
}

func TestUpdateDevice_CarriesID(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":3,"name":"Renamed","uniqueId":"IMEI"}`)
	})

	device, err := client.UpdateDevice(context.Background(), 3, &entity.Device{Name: "Renamed", UniqueID: "IMEI"}, &entity.SessionCredential{Value: "c"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", device.Name)
	assert.Equal(t, "/api/devices/3", (*calls)[0].Path)
	assert.Contains(t, (*calls)[0].Body, `"id":3`)
}

func TestDeleteDevice_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteDevice(context.Background(), 99, &entity.SessionCredential{Value: "c"})
	assert.ErrorIs(t, err, service.ErrTrackingNotFound)
}

func TestGetPositions_Query(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":1,"deviceId":2,"latitude":40.4,"longitude":-3.7}]`)
	})

	deviceID := int64(2)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	positions, err := client.GetPositions(context.Background(), &entity.SessionCredential{Value: "c"}, entity.PositionQuery{
		DeviceID: &deviceID,
		From:     &from,
		To:       &to,
	})
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.InDelta(t, 40.4, positions[0].Latitude, 0.0001)
	assert.Equal(t, "deviceId=2&from=2026-01-01T00%3A00%3A00Z&to=2026-01-01T01%3A00%3A00Z", (*calls)[0].Query)
}

func TestGetPositions_RejectsInvertedRange(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := client.GetPositions(context.Background(), &entity.SessionCredential{Value: "c"}, entity.PositionQuery{From: &from, To: &to})
	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	assert.Empty(t, *calls)
}
