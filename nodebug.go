// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package bfdd

const _DEBUG bool = false

func (k *kernel) checknode(hi, lo Edge, level int) {}

func (k *kernel) logTable() {}
