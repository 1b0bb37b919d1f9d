package game

import (
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/config"
)

// Wallet 货币计数器
//
// 余额不会为负：Spend 在余额不足时拒绝扣款。
// 在主循环中同步调用，不需要加锁。
type Wallet struct {
	balance  int
	starting int
	logger   *zap.Logger
}

// NewWallet 按配置的初始金币创建钱包
func NewWallet(cfg *config.GridConfig, logger *zap.Logger) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	starting := max(cfg.Economy.StartingCoins, 0)
	return &Wallet{
		balance:  starting,
		starting: starting,
		logger:   logger,
	}
}

// Reset 恢复为初始金币，场景重新加载时调用
func (w *Wallet) Reset() {
	w.balance = w.starting
	w.logger.Debug("wallet reset", zap.Int("balance", w.balance))
}

// Balance 当前余额
func (w *Wallet) Balance() int {
	return w.balance
}

// Add 增加余额，忽略非正数
func (w *Wallet) Add(amount int) {
	if amount <= 0 {
		return
	}
	w.balance += amount
	w.logger.Debug("coins added", zap.Int("amount", amount), zap.Int("balance", w.balance))
}

// CanAfford 余额是否足够
func (w *Wallet) CanAfford(amount int) bool {
	return amount <= w.balance
}

// Spend 扣款
// 返回 false 表示余额不足，余额保持不变
func (w *Wallet) Spend(amount int) bool {
	if amount < 0 || !w.CanAfford(amount) {
		return false
	}
	w.balance -= amount
	w.logger.Debug("coins spent", zap.Int("amount", amount), zap.Int("balance", w.balance))
	return true
}
