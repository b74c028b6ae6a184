// Package scramble 确定性随机流的实现
package scramble

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/sha3"
)

// drbg 基于 SHA3-256 的确定性字节流
//
// 种子为 SHA3-256(nonce 8字节小端 ‖ header)；第 i 个流块为
// SHA3-256(seed ‖ uint64小端 i)，块按序拼接成字节流。这是跨
// 验证者兼容性的硬契约：流的每个字节在任何平台上都必须一致，
// 所以这里不允许依赖 math/rand 或任何未钉死的生成器。
type drbg struct {
	seed    [32]byte
	counter uint64
	buf     [32]byte
	off     int
}

// newDRBG 由 (nonce, header) 派生种子并初始化流
func newDRBG(nonce uint64, header []byte) *drbg {
	h := sha3.New256()
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], nonce)
	h.Write(le[:])
	h.Write(header)

	d := &drbg{}
	copy(d.seed[:], h.Sum(nil))
	d.off = len(d.buf) // 首次抽取前强制填充
	return d
}

// refill 生成下一个流块
func (d *drbg) refill() {
	h := sha3.New256()
	h.Write(d.seed[:])
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], d.counter)
	h.Write(le[:])
	copy(d.buf[:], h.Sum(nil))
	d.counter++
	d.off = 0
}

// next8 消费流中接下来的 8 个字节，按小端序解释
//
// 块长 32 字节，8 字节抽取永远对齐，不会跨块。
func (d *drbg) next8() uint64 {
	if d.off >= len(d.buf) {
		d.refill()
	}
	v := binary.LittleEndian.Uint64(d.buf[d.off:])
	d.off += 8
	return v
}

// uintn 无模偏的均匀抽取 [0, n)
//
// 拒绝采样：丢弃 >= ⌊(2⁶⁴-1)/n⌋·n 的抽取值后取模，保证每个
// 余数等概率。n 很小（最大 11），拒绝概率可忽略。
func (d *drbg) uintn(n uint64) uint64 {
	limit := math.MaxUint64 / n * n
	for {
		v := d.next8()
		if v < limit {
			return v % n
		}
	}
}
