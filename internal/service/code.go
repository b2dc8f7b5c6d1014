package service

import (
	"crypto/rand"
	"io"

	"github.com/google/uuid"
)

const codeLength = 8

// CodeGenerator 为新页面生成短码：取 128 位随机标识的前 8 个字符。
// 截断换来了简短的对外链接，但有效键空间远小于底层生成器，
// 碰撞概率不可忽略，因此发布路径必须在提交前向存储校验唯一性
// （见 PageService.Publish 的有界重试）。
type CodeGenerator struct {
	rand io.Reader
}

// NewCodeGenerator 返回使用 crypto/rand 作为随机源的生成器。
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{rand: rand.Reader}
}

// WithRand 允许在测试中注入确定性的随机源。
func (g *CodeGenerator) WithRand(r io.Reader) *CodeGenerator {
	if r != nil {
		g.rand = r
	}
	return g
}

// NewCode 生成一个 8 字符短码。生成器本身不做唯一性检查。
func (g *CodeGenerator) NewCode() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", err
	}
	return id.String()[:codeLength], nil
}
