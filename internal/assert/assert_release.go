// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

//go:build !debug

package assert

func invariant(cond bool, msg string) {}
