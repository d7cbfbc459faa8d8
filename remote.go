package wireledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// jwget fetches a JSON document into v.
func jwget(ctx context.Context, client *http.Client, addr string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %q: %w", addr, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("could not get %q: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("get %q: unexpected status %s", addr, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("could not decode response from %q: %w", addr, err)
	}
	return nil
}

// RemoteStore implements the collaborator interfaces over the upstream REST
// API. The API serves plain arrays on some deployments and wraps them in a
// "data" envelope on others; both shapes are accepted.
type RemoteStore struct {
	BaseURL string
	Client  *http.Client
}

// NewRemoteStore creates a store for the API at baseURL, e.g.
// "http://localhost:5000/api".
func NewRemoteStore(baseURL string) *RemoteStore {
	return &RemoteStore{BaseURL: baseURL, Client: new(http.Client)}
}

func (r *RemoteStore) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

// fetchList fetches a JSON list, unwrapping an envelope when present.
func (r *RemoteStore) fetchList(ctx context.Context, path string) ([]any, error) {
	var jobj any
	if err := jwget(ctx, r.client(), r.BaseURL+path, &jobj); err != nil {
		return nil, err
	}
	if list, ok := jobj.([]any); ok {
		return list, nil
	}
	jval, err := jsonpath.Get("$.data", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected payload from %q: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload from %q: data is not a list", path)
	}
	return list, nil
}

// remoteTransaction is the upstream transaction shape.
type remoteTransaction struct {
	Vendor    string    `json:"vendor"`
	Item      string    `json:"item"`
	PayalType string    `json:"payalType"`
	Qty       float64   `json:"qty"`
	Type      string    `json:"type"`
	InDate    string    `json:"inDate"`
	OutDate   string    `json:"outDate"`
	CreatedAt time.Time `json:"createdAt"`
	Price     float64   `json:"price"`
}

func (rt remoteTransaction) transaction() (Transaction, error) {
	dir, err := ParseDirection(rt.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	var on Date
	str := rt.InDate
	if str == "" {
		str = rt.OutDate
	}
	if str != "" {
		on, err = ParseDate(str)
		if err != nil {
			return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
		}
	}
	tx := NewTransaction(dir, on, rt.CreatedAt, rt.Vendor, rt.Item, rt.PayalType, Q(rt.Qty))
	if rt.Price > 0 {
		tx.Price = M(rt.Price, DefaultCurrency)
	}
	return tx, nil
}

func (r *RemoteStore) transactions(ctx context.Context, dir Direction) ([]Transaction, error) {
	list, err := r.fetchList(ctx, "/transactions?type="+string(dir))
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(list))
	for i, item := range list {
		var rt remoteTransaction
		if err := reencode(item, &rt); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		tx, err := rt.transaction()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *RemoteStore) Outbound(ctx context.Context) ([]Transaction, error) {
	return r.transactions(ctx, Out)
}

func (r *RemoteStore) Inbound(ctx context.Context) ([]Transaction, error) {
	return r.transactions(ctx, In)
}

// remoteVendor is the upstream directory shape; prices are bare numbers.
type remoteVendor struct {
	Name          string `json:"name"`
	AssignedWires []struct {
		WireName   string  `json:"wireName"`
		PayalType  string  `json:"payalType"`
		PricePerKg float64 `json:"pricePerKg"`
	} `json:"assignedWires"`
}

func (r *RemoteStore) Vendors(ctx context.Context) ([]Vendor, error) {
	list, err := r.fetchList(ctx, "/vendors")
	if err != nil {
		return nil, err
	}
	vendors := make([]Vendor, 0, len(list))
	for i, item := range list {
		var rv remoteVendor
		if err := reencode(item, &rv); err != nil {
			return nil, fmt.Errorf("vendor %d: %w", i, err)
		}
		v := Vendor{Name: rv.Name}
		for _, a := range rv.AssignedWires {
			v.AssignedWires = append(v.AssignedWires, WireAssignment{
				WireName:   a.WireName,
				PayalType:  a.PayalType,
				PricePerKg: M(a.PricePerKg, DefaultCurrency),
			})
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func (r *RemoteStore) Stamps(ctx context.Context) ([]PageStamp, error) {
	list, err := r.fetchList(ctx, "/print-status")
	if err != nil {
		return nil, err
	}
	stamps := make([]PageStamp, 0, len(list))
	for i, item := range list {
		var s PageStamp
		if err := reencode(item, &s); err != nil {
			return nil, fmt.Errorf("print status %d: %w", i, err)
		}
		stamps = append(stamps, s)
	}
	return stamps, nil
}

// reencode converts a decoded generic JSON value into a typed struct.
func reencode(from any, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}

var (
	_ TransactionStore   = (*RemoteStore)(nil)
	_ DirectoryService   = (*RemoteStore)(nil)
	_ PrintStatusService = (*RemoteStore)(nil)
)
