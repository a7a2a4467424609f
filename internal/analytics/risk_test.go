package analytics

import (
	"testing"

	"finboard/internal/models"
)

func TestRisk(t *testing.T) {
	t.Run("empty_portfolio_all_zeros", func(t *testing.T) {
		got := Risk(nil)
		if got != (RiskIndicators{}) {
			t.Errorf("expected zero indicators, got %+v", got)
		}
	})

	t.Run("single_stock_flat", func(t *testing.T) {
		assets := []models.Asset{asset(models.AssetTypeStock, 10, 100, 100)}

		got := Risk(assets)

		if got.Volatility != 18.0 {
			t.Errorf("expected volatility 18.0, got %v", got.Volatility)
		}
		// (0% return - 3% risk-free) / 18% volatility.
		if got.SharpeRatio != -0.17 {
			t.Errorf("expected sharpe -0.17, got %v", got.SharpeRatio)
		}
		if got.MaxDrawdown != 45.0 {
			t.Errorf("expected max drawdown 45.0, got %v", got.MaxDrawdown)
		}
		if got.Beta != 1.2 {
			t.Errorf("expected beta 1.2, got %v", got.Beta)
		}
	})

	t.Run("positive_return_sharpe", func(t *testing.T) {
		// 21% return against 18% volatility and 3% risk-free is exactly 1.
		assets := []models.Asset{asset(models.AssetTypeStock, 1, 100, 121)}

		got := Risk(assets)
		if got.SharpeRatio != 1.0 {
			t.Errorf("expected sharpe 1.0, got %v", got.SharpeRatio)
		}
	})

	t.Run("unknown_type_uses_default_volatility", func(t *testing.T) {
		assets := []models.Asset{asset(models.AssetType("commodity"), 1, 100, 100)}

		got := Risk(assets)
		if got.Volatility != 15.0 {
			t.Errorf("expected volatility 15.0, got %v", got.Volatility)
		}
		if got.Beta != 1.0 {
			t.Errorf("expected beta 1.0, got %v", got.Beta)
		}
	})

	t.Run("crypto_raises_volatility", func(t *testing.T) {
		savingsOnly := Risk([]models.Asset{asset(models.AssetTypeSavings, 1, 1000, 1000)})
		withCrypto := Risk([]models.Asset{
			asset(models.AssetTypeSavings, 1, 1000, 1000),
			asset(models.AssetTypeCrypto, 1, 1000, 1000),
		})

		if withCrypto.Volatility <= savingsOnly.Volatility {
			t.Errorf("expected crypto to raise volatility: %v <= %v", withCrypto.Volatility, savingsOnly.Volatility)
		}
		// Even 50/50 savings and crypto: (0.02 + 0.60) / 2 = 0.31.
		if withCrypto.Volatility != 31.0 {
			t.Errorf("expected volatility 31.0, got %v", withCrypto.Volatility)
		}
	})

	t.Run("zero_buy_price_reports_zero_return", func(t *testing.T) {
		assets := []models.Asset{asset(models.AssetTypeStock, 1, 0, 100)}

		got := Risk(assets)
		// Return term is 0, so sharpe is just the risk-free drag.
		if got.SharpeRatio != -0.17 {
			t.Errorf("expected sharpe -0.17, got %v", got.SharpeRatio)
		}
	})
}
