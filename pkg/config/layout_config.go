package config

// 布局配置常量
// 本文件定义了战场（可移动区域）的尺寸、我方飞机的边界参数和素材文件约定

// Playfield Configuration (战场配置)
// 所有坐标使用"战场坐标系"（左上角为原点，X 向右，Y 向下）
const (
	// DefaultPlayfieldWidth 是默认战场宽度（像素），与背景图宽度一致
	DefaultPlayfieldWidth = 480

	// DefaultPlayfieldHeight 是默认战场高度（像素）
	DefaultPlayfieldHeight = 700

	// MarginBottom 是战场底部预留的空白带高度（像素）
	// 飞机的任何部分都不能进入这个区域
	MarginBottom = 60

	// DefaultCraftSpeed 是飞机每次移动的步长（像素）
	DefaultCraftSpeed = 10
)

// Asset Configuration (素材文件约定)
// 路径均相对于 base_dir
const (
	// ImageDir 是飞机图片所在目录
	ImageDir = "material/image"

	// ResourceConfigPath 是可选的资源清单文件
	ResourceConfigPath = "material/config/resources.yaml"

	// HeroIdleFrameCount 是待机动画帧数
	HeroIdleFrameCount = 2

	// HeroDestroyFrameCount 是爆炸序列帧数
	HeroDestroyFrameCount = 4
)

// HeroIdleFrameNames 待机动画帧文件名（按播放顺序）
var HeroIdleFrameNames = [HeroIdleFrameCount]string{
	"hero1.png",
	"hero2.png",
}

// HeroDestroyFrameNames 爆炸序列帧文件名（按播放顺序）
var HeroDestroyFrameNames = [HeroDestroyFrameCount]string{
	"hero_blowup_n1.png",
	"hero_blowup_n2.png",
	"hero_blowup_n3.png",
	"hero_blowup_n4.png",
}

// Animation Configuration (动画节奏)
// Ebitengine 默认 60 TPS，以下均以 tick 为单位
const (
	// IdleFrameSwitchTicks 待机两帧交替的间隔
	IdleFrameSwitchTicks = 5

	// DestroyFrameTicks 爆炸序列每帧停留的 tick 数
	DestroyFrameTicks = 6

	// DefaultRespawnDelay 爆炸序列播完后到复活的默认等待时间（秒）
	DefaultRespawnDelay = 1.0

	// MaskAlphaThreshold 生成碰撞遮罩时的透明度阈值，alpha 大于该值视为不透明
	MaskAlphaThreshold = 127
)

// GetPlayfieldBounds 返回飞机左上角允许的坐标范围
// 返回值：maxLeft, maxTop（最小值恒为 0）
func GetPlayfieldBounds(playfieldWidth, playfieldHeight, craftWidth, craftHeight int) (int, int) {
	maxLeft := playfieldWidth - craftWidth
	maxTop := playfieldHeight - MarginBottom - craftHeight
	return maxLeft, maxTop
}
