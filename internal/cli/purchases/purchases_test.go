package purchases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/cli/clitest"
	"github.com/julianstephens/moodpet/internal/gateway"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/shop"
)

func TestBuyCmd(t *testing.T) {
	ctx, env := clitest.New(t, true)

	if err := (&BuyCmd{Item: "treat"}).Run(ctx); err != nil {
		t.Fatalf("BuyCmd.Run() error = %v", err)
	}

	snap, err := env.Snapshot(t)
	if err != nil {
		t.Fatalf("backend has no snapshot after purchase: %v", err)
	}
	if snap.Balance != 80 {
		t.Errorf("saved balance = %d, want 80", snap.Balance)
	}
	if snap.PetState.Happiness != 60 {
		t.Errorf("saved happiness = %d, want 60", snap.PetState.Happiness)
	}
}

func TestBuyCmdReportsFailedSave(t *testing.T) {
	ctx, env := clitest.NewWithHandler(t, true, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	err := (&BuyCmd{Item: "treat"}).Run(ctx)
	if !errors.Is(err, gateway.ErrUnexpectedStatus) {
		t.Fatalf("BuyCmd.Run() error = %v, want %v", err, gateway.ErrUnexpectedStatus)
	}
	if _, err := env.Snapshot(t); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("backend snapshot error = %v, want %v", err, store.ErrNotFound)
	}
}

func TestBuyCmdUnknownItem(t *testing.T) {
	ctx, _ := clitest.New(t, true)

	err := (&BuyCmd{Item: "rocket"}).Run(ctx)
	if !errors.Is(err, shop.ErrUnknownItem) {
		t.Errorf("BuyCmd.Run() error = %v, want %v", err, shop.ErrUnknownItem)
	}
}

func TestBuyCmdUnaffordable(t *testing.T) {
	ctx, env := clitest.New(t, true)

	poor := models.DefaultSnapshot()
	poor.Balance = 10
	if err := env.Store.SaveSnapshot(context.Background(), env.User.Token, poor); err != nil {
		t.Fatal(err)
	}

	if err := (&BuyCmd{Item: "feast"}).Run(ctx); err == nil {
		t.Fatal("BuyCmd.Run() should fail when the balance is too low")
	}

	snap, err := env.Snapshot(t)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Balance != 10 || snap.PetState != poor.PetState {
		t.Errorf("snapshot changed by a rejected purchase: %+v", snap)
	}
}

func TestShopCmd(t *testing.T) {
	ctx, _ := clitest.New(t, false)
	if err := (&ShopCmd{}).Run(ctx); err != nil {
		t.Errorf("ShopCmd.Run() error = %v", err)
	}
}
