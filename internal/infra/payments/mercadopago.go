package payments

import (
	"context"
	"errors"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

type CheckoutItem struct {
	ID        string
	Title     string
	Quantity  int
	UnitPrice float64
}

type Checkout struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// Gateway wraps the Mercado Pago preference API for product checkouts.
type Gateway struct {
	client preference.Client
	log    *zap.Logger
}

func NewGateway(accessToken string, log *zap.Logger) (*Gateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("mercadopago sdk config failed", zap.Error(err))
		return nil, err
	}

	return &Gateway{
		client: preference.NewClient(cfg),
		log:    log,
	}, nil
}

func (g *Gateway) CreateCheckout(
	ctx context.Context,
	externalReference string,
	items []CheckoutItem,
) (*Checkout, error) {

	req := preference.Request{
		ExternalReference: externalReference,
	}
	for _, it := range items {
		req.Items = append(req.Items, preference.ItemRequest{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("mercadopago preference create failed", zap.Error(err))
		return nil, err
	}

	g.log.Info("mercadopago preference created",
		zap.String("preference_id", resp.ID),
		zap.String("external_reference", externalReference),
	)

	return &Checkout{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
