package staking

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// Client speaks JSON over HTTP to the restaking gateway, which fronts both
// the external protocol and token custody. It implements Protocol and
// Custody.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// NewClient validates the gateway URL and builds a Client.
func NewClient(rawURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("gateway url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("gateway url missing host")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

type (
	beginWithdrawalRequest struct {
		Assets []model.AssetID `json:"assets"`
		Shares []uint64        `json:"shares"`
	}
	receiptPayload struct {
		ID     model.ReceiptID `json:"id"`
		Node   model.NodeID    `json:"node"`
		Assets []model.AssetID `json:"assets"`
		Shares []uint64        `json:"shares"`
	}
	completeWithdrawalResponse struct {
		Received map[model.AssetID]uint64 `json:"received"`
	}
	delegateRequest struct {
		Operator model.OperatorID `json:"operator"`
		Proof    string           `json:"proof"`
	}
	undelegateResponse struct {
		Receipts []receiptPayload `json:"receipts"`
	}
	sharesResponse struct {
		Shares uint64 `json:"shares"`
	}
	balanceResponse struct {
		Balance uint64 `json:"balance"`
	}
	transferRequest struct {
		Recipient string `json:"recipient"`
		Amount    uint64 `json:"amount"`
	}
	burnRequest struct {
		Holder string `json:"holder"`
		Shares uint64 `json:"shares"`
	}
)

func (p receiptPayload) receipt() model.WithdrawalReceipt {
	return model.WithdrawalReceipt{ID: p.ID, Node: p.Node, Assets: p.Assets, Shares: p.Shares}
}

// BeginWithdrawal asks the protocol to start withdrawing the given strategy
// shares from the node and returns the receipt identifying the pending
// operation.
func (c *Client) BeginWithdrawal(ctx context.Context, node model.NodeID, assets []model.AssetID, shares []uint64) (model.WithdrawalReceipt, error) {
	var resp receiptPayload
	path := fmt.Sprintf("v1/nodes/%d/withdrawals", node)
	err := c.call(ctx, http.MethodPost, path, beginWithdrawalRequest{Assets: assets, Shares: shares}, &resp)
	if err != nil {
		return model.WithdrawalReceipt{}, fmt.Errorf("begin withdrawal from node %d: %w", node, err)
	}
	return resp.receipt(), nil
}

// CompleteWithdrawal consumes the receipt and returns the amounts actually
// received per asset, net of any slashing during the waiting period.
func (c *Client) CompleteWithdrawal(ctx context.Context, receipt model.WithdrawalReceipt) (map[model.AssetID]uint64, error) {
	var resp completeWithdrawalResponse
	path := fmt.Sprintf("v1/withdrawals/%s/complete", url.PathEscape(string(receipt.ID)))
	body := receiptPayload{ID: receipt.ID, Node: receipt.Node, Assets: receipt.Assets, Shares: receipt.Shares}
	if err := c.call(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("complete withdrawal %s: %w", receipt.ID, err)
	}
	return resp.Received, nil
}

// Delegate points the node at an operator.
func (c *Client) Delegate(ctx context.Context, node model.NodeID, operator model.OperatorID, proof []byte) error {
	path := fmt.Sprintf("v1/nodes/%d/delegation", node)
	body := delegateRequest{Operator: operator, Proof: base64.StdEncoding.EncodeToString(proof)}
	if err := c.call(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("delegate node %d to %s: %w", node, operator, err)
	}
	return nil
}

// Undelegate removes the node's delegation; the protocol queues a
// withdrawal for every position the node held and returns the receipts.
func (c *Client) Undelegate(ctx context.Context, node model.NodeID) ([]model.WithdrawalReceipt, error) {
	var resp undelegateResponse
	path := fmt.Sprintf("v1/nodes/%d/delegation", node)
	if err := c.call(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("undelegate node %d: %w", node, err)
	}
	receipts := make([]model.WithdrawalReceipt, 0, len(resp.Receipts))
	for _, p := range resp.Receipts {
		receipts = append(receipts, p.receipt())
	}
	return receipts, nil
}

// SharesOf reports the node's current share position in the strategy.
func (c *Client) SharesOf(ctx context.Context, node model.NodeID, asset model.AssetID) (uint64, error) {
	var resp sharesResponse
	path := fmt.Sprintf("v1/nodes/%d/shares/%s", node, url.PathEscape(string(asset)))
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, fmt.Errorf("shares of node %d in %s: %w", node, asset, err)
	}
	return resp.Shares, nil
}

// BalanceOf reports the custodied balance of the asset.
func (c *Client) BalanceOf(ctx context.Context, asset model.AssetID) (uint64, error) {
	var resp balanceResponse
	path := fmt.Sprintf("v1/custody/%s", url.PathEscape(string(asset)))
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, fmt.Errorf("custodied balance of %s: %w", asset, err)
	}
	return resp.Balance, nil
}

// Transfer pays amount base units of the asset out of custody.
func (c *Client) Transfer(ctx context.Context, recipient string, asset model.AssetID, amount uint64) error {
	path := fmt.Sprintf("v1/custody/%s/transfers", url.PathEscape(string(asset)))
	if err := c.call(ctx, http.MethodPost, path, transferRequest{Recipient: recipient, Amount: amount}, nil); err != nil {
		return fmt.Errorf("transfer %d %s to %s: %w", amount, asset, recipient, err)
	}
	return nil
}

// BurnShares burns escrowed share tokens of the holder.
func (c *Client) BurnShares(ctx context.Context, holder string, shares uint64) error {
	if err := c.call(ctx, http.MethodPost, "v1/shares/burn", burnRequest{Holder: holder, Shares: shares}, nil); err != nil {
		return fmt.Errorf("burn %d shares of %s: %w", shares, holder, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
