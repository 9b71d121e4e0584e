// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-prelude/prelude"
	"github.com/ajroetker/go-prelude/prelude/contrib/functional"
)

// samplePoints are the x values every operator is evaluated at. Binary
// operators pair them with the same points reversed.
var samplePoints = []float64{-2, -0.5, 0, 0.5, 2}

type unaryOp struct {
	name string
	fn   prelude.Unary[float64]
}

type binaryOp struct {
	name string
	fn   prelude.Binary[float64]
}

type tryBinaryOp struct {
	name string
	fn   prelude.TryBinary[float64]
}

var unaryOps = []unaryOp{
	{"id", prelude.ID[float64]},
	{"neg", prelude.Neg[float64]},
	{"sigmoid", prelude.Sigmoid[float64]},
	{"relu", prelude.ReLU[float64]},
	{"log", prelude.Log[float64]},
	{"exp", prelude.Exp[float64]},
}

var binaryOps = []binaryOp{
	{"mul", prelude.Mul[float64]},
	{"add", prelude.Add[float64]},
	{"lt", prelude.LT[float64]},
	{"eq", prelude.EQ[float64]},
	{"max", prelude.Max[float64]},
	{"is_close", prelude.IsClose[float64]},
}

// Backward operators are shown with an upstream gradient of 1.
var backwardOps = []tryBinaryOp{
	{"log_back", prelude.LogBack[float64]},
	{"inv_back", prelude.InvBack[float64]},
	{"relu_back", infallible(prelude.ReLUBack[float64])},
	{"sigmoid_back", infallible(prelude.SigmoidBack[float64])},
	{"exp_back", infallible(prelude.ExpBack[float64])},
}

func infallible(fn prelude.Backward[float64]) prelude.TryBinary[float64] {
	return func(x, d float64) (float64, error) { return fn(x, d), nil }
}

var title = cases.Title(language.English)

// writeReport writes the FMA section and the operator tables to w.
func writeReport(w io.Writer, goarch string) error {
	bw := bufio.NewWriter(w)
	writeFMA(bw, goarch)
	writeUnary(bw)
	writeBinary(bw)
	writeBackward(bw)
	return bw.Flush()
}

// writeFMA reports whether fused multiply-add is available. The Go compiler
// may contract x*y+z into one rounding where it is, so chains of Mul and Add
// can differ in the last bit between machines.
func writeFMA(w io.Writer, goarch string) {
	fmt.Fprintf(w, "=== %s ===\n", title.String("fused multiply-add"))
	switch goarch {
	case "amd64":
		fmt.Fprintf(w, "  cpu.X86.HasFMA:  %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  cpu.X86.HasAVX2: %v\n", cpu.X86.HasAVX2)
	case "arm64":
		// FMADD is part of the base FP instruction set.
		fmt.Fprintf(w, "  cpu.ARM64.HasFP:    %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  cpu.ARM64.HasASIMD: %v\n", cpu.ARM64.HasASIMD)
	default:
		fmt.Fprintf(w, "  no probe for %s\n", goarch)
	}
	fmt.Fprintln(w)
}

func writeUnary(w io.Writer) {
	writeHeader(w, "unary operators", "x")
	for _, op := range unaryOps {
		writeRow(w, op.name, lo.Map(functional.Map(op.fn)(samplePoints), formatCell))
	}
	fmt.Fprintln(w)
}

func writeBinary(w io.Writer) {
	ys := slices.Clone(samplePoints)
	slices.Reverse(ys)

	writeHeader(w, "binary operators", "x")
	writeRow(w, "(y)", lo.Map(ys, formatCell))
	for _, op := range binaryOps {
		writeRow(w, op.name, lo.Map(functional.ZipWith(op.fn)(samplePoints, ys), formatCell))
	}
	fmt.Fprintln(w)
}

func writeBackward(w io.Writer) {
	writeHeader(w, "backward operators", "x")
	for _, op := range backwardOps {
		cells := lo.Map(samplePoints, func(x float64, _ int) string {
			v, err := op.fn(x, 1)
			if err != nil {
				return errCell(err)
			}
			return formatCell(v, 0)
		})
		writeRow(w, op.name, cells)
	}
	fmt.Fprintln(w)
}

func writeHeader(w io.Writer, section, label string) {
	fmt.Fprintf(w, "=== %s ===\n", title.String(section))
	writeRow(w, "("+label+")", lo.Map(samplePoints, formatCell))
}

func writeRow(w io.Writer, name string, cells []string) {
	fmt.Fprintf(w, "  %-14s", name)
	for _, c := range cells {
		fmt.Fprintf(w, " %12s", c)
	}
	fmt.Fprintln(w)
}

func formatCell(v float64, _ int) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func errCell(err error) string {
	if errors.Is(err, prelude.ErrDivisionByZero) {
		return "div0"
	}
	return "err"
}
