package connectionhub

import (
	"fmt"
	notificationstore "hrms-backend/lib/notification/store"
	dbmodels "hrms-backend/models/db"
	wsmodels "hrms-backend/models/ws"
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type notifStoreStub struct {
	notificationstore.Provider
}

func (s notifStoreStub) ListByUser(userID string, limit int) ([]dbmodels.Notification, error) {
	return nil, nil
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := &impl{
		clients: map[string]clientSession{},
		store:   notifStoreStub{},
	}

	const users = 8
	var wg sync.WaitGroup
	for n := 0; n < users; n++ {
		userID := fmt.Sprintf("user-%d", n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.AddClient(userID, &websocket.Conn{})
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: userID, Msg: "ping"})
			hub.IsConnected(userID)
			hub.DeleteClient(userID)
		}()
	}
	wg.Wait()

	for n := 0; n < users; n++ {
		require.Equal(t, false, hub.IsConnected(fmt.Sprintf("user-%d", n)))
	}
}
