package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如爆炸后等待复活）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "respawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Tick 累加时间，达到目标时间后 IsReady 置为 true
func (t *TimerComponent) Tick(deltaTime float64) {
	if t.IsReady {
		return
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
	}
}

// Reset 清零计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
